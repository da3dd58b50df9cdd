package classifier

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/floats"
)

// ForestLeaf marks a missing child in the exported node arrays.
const ForestLeaf = -1

// ForestArtifact is the JSON export of a fitted sklearn tree ensemble: one entry per
// estimator holding its tree_ arrays, with value flattened to [node][class].
type ForestArtifact struct {
	ModelType    string         `json:"model_type"`
	Classes      []string       `json:"classes"`
	FeatureNames []string       `json:"feature_names"`
	Trees        []TreeArtifact `json:"trees"`
}

type TreeArtifact struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

type decisionTree struct {
	left      []int
	right     []int
	feature   []int
	threshold []float64
	// leafProbabilities is nil for split nodes.
	leafProbabilities [][]float64
}

// ForestClassifier averages normalized leaf class counts over all trees,
// the same way sklearn's predict_proba does for forests.
type ForestClassifier struct {
	modelType    string
	classes      []string
	featureNames []string
	trees        []decisionTree
}

func DecodeForestArtifact(r io.Reader) (*ForestArtifact, error) {
	var artifact ForestArtifact
	decoder := json.NewDecoder(r)
	err := decoder.Decode(&artifact)
	if err != nil {
		return nil, err
	}
	return &artifact, nil
}

func NewForestClassifier(artifact *ForestArtifact) (*ForestClassifier, error) {
	if artifact == nil {
		return nil, errors.New("forest artifact is nil")
	}
	if len(artifact.Classes) == 0 {
		return nil, errors.New("forest artifact has no classes")
	}
	if len(artifact.FeatureNames) == 0 {
		return nil, errors.New("forest artifact has no feature names")
	}
	if len(artifact.Trees) == 0 {
		return nil, errors.New("forest artifact has no trees")
	}

	classifier := &ForestClassifier{
		modelType:    artifact.ModelType,
		classes:      append([]string(nil), artifact.Classes...),
		featureNames: append([]string(nil), artifact.FeatureNames...),
		trees:        make([]decisionTree, 0, len(artifact.Trees)),
	}
	for i, tree := range artifact.Trees {
		compiled, err := compileTree(tree, len(artifact.FeatureNames), len(artifact.Classes))
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		classifier.trees = append(classifier.trees, compiled)
	}
	return classifier, nil
}

// compileTree checks the node arrays and precomputes leaf distributions. Children must sit
// after their parent so every walk terminates.
func compileTree(tree TreeArtifact, featureCount, classCount int) (decisionTree, error) {
	nodeCount := len(tree.ChildrenLeft)
	if nodeCount == 0 {
		return decisionTree{}, errors.New("tree has no nodes")
	}
	if len(tree.ChildrenRight) != nodeCount || len(tree.Feature) != nodeCount ||
		len(tree.Threshold) != nodeCount || len(tree.Value) != nodeCount {
		return decisionTree{}, errors.New("tree arrays have different lengths")
	}

	compiled := decisionTree{
		left:              tree.ChildrenLeft,
		right:             tree.ChildrenRight,
		feature:           tree.Feature,
		threshold:         tree.Threshold,
		leafProbabilities: make([][]float64, nodeCount),
	}

	for node := 0; node < nodeCount; node++ {
		left, right := tree.ChildrenLeft[node], tree.ChildrenRight[node]
		if left == ForestLeaf || right == ForestLeaf {
			if left != right {
				return decisionTree{}, fmt.Errorf("node %d has exactly one child", node)
			}
			counts := tree.Value[node]
			if len(counts) != classCount {
				return decisionTree{}, fmt.Errorf("leaf %d has %d class values, want %d", node, len(counts), classCount)
			}
			total := floats.Sum(counts)
			if total <= 0 {
				return decisionTree{}, fmt.Errorf("leaf %d has no samples", node)
			}
			probabilities := make([]float64, classCount)
			floats.ScaleTo(probabilities, 1/total, counts)
			compiled.leafProbabilities[node] = probabilities
			continue
		}
		if left <= node || right <= node || left >= nodeCount || right >= nodeCount {
			return decisionTree{}, fmt.Errorf("node %d has out of order children %d and %d", node, left, right)
		}
		if tree.Feature[node] < 0 || tree.Feature[node] >= featureCount {
			return decisionTree{}, fmt.Errorf("node %d splits on unknown feature %d", node, tree.Feature[node])
		}
	}
	return compiled, nil
}

func (t decisionTree) leaf(features []float32) []float64 {
	node := 0
	for t.leafProbabilities[node] == nil {
		if float64(features[t.feature[node]]) <= t.threshold[node] {
			node = t.left[node]
		} else {
			node = t.right[node]
		}
	}
	return t.leafProbabilities[node]
}

func (c *ForestClassifier) Score(ctx context.Context, features []float32) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(features) != len(c.featureNames) {
		return nil, fmt.Errorf("feature vector has %d entries, model expects %d", len(features), len(c.featureNames))
	}

	probabilities := make([]float64, len(c.classes))
	for _, tree := range c.trees {
		floats.Add(probabilities, tree.leaf(features))
	}
	floats.Scale(1/float64(len(c.trees)), probabilities)
	return probabilities, nil
}

func (c *ForestClassifier) Classes() []string {
	return append([]string(nil), c.classes...)
}

func (c *ForestClassifier) FeatureNames() []string {
	return append([]string(nil), c.featureNames...)
}

func (c *ForestClassifier) FeatureCount() int {
	return len(c.featureNames)
}

func (c *ForestClassifier) TreeCount() int {
	return len(c.trees)
}

func (c *ForestClassifier) ModelType() string {
	return c.modelType
}

func (c *ForestClassifier) Close() error {
	return nil
}
