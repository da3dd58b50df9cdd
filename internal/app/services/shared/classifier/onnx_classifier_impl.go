package classifier

import (
	"context"
	"errors"
	"fmt"

	ort "github.com/yalue/onnxruntime_go"
)

// ONNXClassifier runs a classifier exported with zipmap disabled: float32 [1,N] in,
// float32 [1,M] probabilities out. The ONNX Runtime environment must already be initialized.
type ONNXClassifier struct {
	session      *ort.DynamicAdvancedSession
	classes      []string
	featureCount int
	inputName    string
	outputName   string
}

// NewONNXClassifier takes class labels from the caller because the exported graph carries
// only output positions.
func NewONNXClassifier(modelData []byte, classes []string, inputName, outputName string) (*ONNXClassifier, error) {
	if len(modelData) == 0 {
		return nil, errors.New("onnx model is empty")
	}
	if len(classes) == 0 {
		return nil, errors.New("onnx classifier needs class labels")
	}

	inputs, outputs, err := ort.GetInputOutputInfoWithONNXData(modelData)
	if err != nil {
		return nil, fmt.Errorf("read onnx input/output info: %w", err)
	}
	input, err := findTensorInfo(inputs, inputName)
	if err != nil {
		return nil, err
	}
	output, err := findTensorInfo(outputs, outputName)
	if err != nil {
		return nil, err
	}

	featureCount, err := lastDimension(input)
	if err != nil {
		return nil, err
	}
	classCount, err := lastDimension(output)
	if err != nil {
		return nil, err
	}
	if classCount != len(classes) {
		return nil, fmt.Errorf("onnx output %s has %d classes, want %d", outputName, classCount, len(classes))
	}

	session, err := ort.NewDynamicAdvancedSessionWithONNXData(modelData, []string{inputName}, []string{outputName}, nil)
	if err != nil {
		return nil, fmt.Errorf("create onnx session: %w", err)
	}

	return &ONNXClassifier{
		session:      session,
		classes:      append([]string(nil), classes...),
		featureCount: featureCount,
		inputName:    inputName,
		outputName:   outputName,
	}, nil
}

func findTensorInfo(infos []ort.InputOutputInfo, name string) (ort.InputOutputInfo, error) {
	for _, info := range infos {
		if info.Name == name {
			return info, nil
		}
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	return ort.InputOutputInfo{}, fmt.Errorf("onnx model has no tensor %q (found %v)", name, names)
}

func lastDimension(info ort.InputOutputInfo) (int, error) {
	if len(info.Dimensions) == 0 {
		return 0, fmt.Errorf("onnx tensor %s has no dimensions", info.Name)
	}
	last := info.Dimensions[len(info.Dimensions)-1]
	if last <= 0 {
		return 0, fmt.Errorf("onnx tensor %s has a dynamic last dimension", info.Name)
	}
	return int(last), nil
}

// Score is safe for concurrent use; each call owns its tensors.
func (c *ONNXClassifier) Score(ctx context.Context, features []float32) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(features) != c.featureCount {
		return nil, fmt.Errorf("feature vector has %d entries, model expects %d", len(features), c.featureCount)
	}

	input, err := ort.NewTensor(ort.NewShape(1, int64(c.featureCount)), append([]float32(nil), features...))
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}
	defer input.Destroy()

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(c.classes))))
	if err != nil {
		return nil, fmt.Errorf("create output tensor: %w", err)
	}
	defer output.Destroy()

	err = c.session.Run([]ort.Value{input}, []ort.Value{output})
	if err != nil {
		return nil, fmt.Errorf("run onnx session: %w", err)
	}

	raw := output.GetData()
	probabilities := make([]float64, len(raw))
	for i, value := range raw {
		probabilities[i] = float64(value)
	}
	return probabilities, nil
}

func (c *ONNXClassifier) Classes() []string {
	return append([]string(nil), c.classes...)
}

func (c *ONNXClassifier) FeatureCount() int {
	return c.featureCount
}

func (c *ONNXClassifier) Close() error {
	if c.session == nil {
		return nil
	}
	err := c.session.Destroy()
	c.session = nil
	return err
}
