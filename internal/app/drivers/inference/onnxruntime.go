package inference

import (
	"diagnosis-service/internal/app/config"
	"diagnosis-service/internal/pkg/exceptions"
	"errors"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
	"go.uber.org/zap"
)

var (
	environmentMu      sync.Mutex
	environmentOwnedBy int
)

// NewONNXRuntime initializes the process-wide ONNX Runtime environment. The returned
// close function destroys it and must run after every session has been destroyed.
func NewONNXRuntime(log *zap.Logger, prediction config.Prediction) (func() error, error) {
	environmentMu.Lock()
	defer environmentMu.Unlock()

	if prediction.ONNXSharedLibrary == "" {
		return nil, exceptions.ErrInferenceRuntimeUnavailable(errors.New("MODEL_ONNX_SHARED_LIBRARY_PATH is not set"))
	}

	if !ort.IsInitialized() {
		ort.SetSharedLibraryPath(prediction.ONNXSharedLibrary)
		err := ort.InitializeEnvironment()
		if err != nil {
			return nil, exceptions.ErrInferenceRuntimeUnavailable(err)
		}
		log.Info("ONNX Runtime environment initialized",
			zap.String("shared_library", prediction.ONNXSharedLibrary),
		)
	}
	environmentOwnedBy++

	var once sync.Once
	return func() error {
		var err error
		once.Do(func() {
			environmentMu.Lock()
			defer environmentMu.Unlock()
			environmentOwnedBy--
			if environmentOwnedBy == 0 && ort.IsInitialized() {
				err = ort.DestroyEnvironment()
			}
		})
		return err
	}, nil
}
