package predictions

import (
	"context"
	"diagnosis-service/internal/app/config"
	"diagnosis-service/internal/app/services/shared/classifier"
	"diagnosis-service/internal/pkg/constvars"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDescriptionTable = `Disease,Description
Fungal infection,"In humans, fungal infections occur when an invading fungus takes over an area of the body."
Acne,Acne vulgaris is the formation of comedones and pimples.
`

const testPrecautionTable = `Disease,Precaution_1,Precaution_2,Precaution_3,Precaution_4
Fungal infection,bath twice,use detol or neem in bathing water,keep infected area dry,use clean cloths
Allergy,apply calamine,cover area with bandage,,use ice to compress itching
`

// testForestArtifact has one tree splitting on itching: without it every disease is equally
// likely, with it Fungal infection dominates and Acne ties Allergy.
func testForestArtifact() *classifier.ForestArtifact {
	vocabulary := DefaultVocabulary()
	catalog := DefaultCatalog()
	itching, _ := vocabulary.IndexOf("itching")

	uniform := make([]float64, catalog.Len())
	for i := range uniform {
		uniform[i] = 1
	}
	fungal := make([]float64, catalog.Len())
	fungal[15] = 8
	fungal[2] = 1
	fungal[4] = 1

	return &classifier.ForestArtifact{
		ModelType:    "ExtraTreesClassifier",
		Classes:      catalog.Names(),
		FeatureNames: vocabulary.Names(),
		Trees: []classifier.TreeArtifact{
			{
				ChildrenLeft:  []int{1, -1, -1},
				ChildrenRight: []int{2, -1, -1},
				Feature:       []int{itching, -2, -2},
				Threshold:     []float64{0.5, -2, -2},
				Value:         [][]float64{uniform, uniform, fungal},
			},
		},
	}
}

func writeTestArtifacts(t *testing.T, artifact *classifier.ForestArtifact) string {
	t.Helper()
	dir := t.TempDir()

	if artifact != nil {
		data, err := json.Marshal(artifact)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, constvars.DefaultForestArtifactFileName), data, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, constvars.DefaultDescriptionFileName), []byte(testDescriptionTable), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, constvars.DefaultPrecautionFileName), []byte(testPrecautionTable), 0o644))
	return dir
}

func testPredictionConfig(dir string) config.Prediction {
	return config.Prediction{
		ArtifactURI:         dir,
		Format:              constvars.ModelFormatForest,
		DescriptionFileName: constvars.DefaultDescriptionFileName,
		PrecautionFileName:  constvars.DefaultPrecautionFileName,
	}
}

type MockDiseaseClassifier struct {
	mock.Mock
}

func (m *MockDiseaseClassifier) Score(ctx context.Context, features []float32) ([]float64, error) {
	args := m.Called(ctx, features)
	distribution, _ := args.Get(0).([]float64)
	return distribution, args.Error(1)
}

func (m *MockDiseaseClassifier) Classes() []string {
	return DefaultCatalog().Names()
}

func (m *MockDiseaseClassifier) FeatureCount() int {
	return DefaultVocabulary().Len()
}

func (m *MockDiseaseClassifier) Close() error {
	return nil
}

// peakedDistribution puts peak on index and spreads the rest evenly over the catalog.
func peakedDistribution(index int, peak float64) []float64 {
	size := DefaultCatalog().Len()
	rest := (1 - peak) / float64(size-1)
	distribution := make([]float64, size)
	for i := range distribution {
		distribution[i] = rest
	}
	distribution[index] = peak
	return distribution
}
