package predictions

import (
	"context"
	"diagnosis-service/internal/app/config"
	"diagnosis-service/internal/app/services/shared/artifacts"
	"diagnosis-service/internal/pkg/constvars"
	"diagnosis-service/internal/pkg/exceptions"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func assertServiceUnavailable(t *testing.T, err error) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a custom error, got %v", err)
	assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
}

func TestLoadPredictionModel(t *testing.T) {
	ctx := context.Background()
	vocabulary := DefaultVocabulary()
	catalog := DefaultCatalog()

	t.Run("Loads Forest And Tables", func(t *testing.T) {
		dir := writeTestArtifacts(t, testForestArtifact())
		store, err := artifacts.NewLocalArtifactStore(dir)
		require.NoError(t, err)

		model, err := LoadPredictionModel(ctx, zap.NewNop(), store, testPredictionConfig(dir), vocabulary, catalog)
		require.NoError(t, err)
		defer model.Close()

		assert.Equal(t, constvars.ModelFormatForest, model.Format)
		assert.Equal(t, dir, model.Location)
		assert.Equal(t, 132, model.Classifier.FeatureCount())
		assert.Equal(t, 3, model.References.Len())
	})

	t.Run("Missing Classifier Artifact", func(t *testing.T) {
		dir := writeTestArtifacts(t, nil)
		store, err := artifacts.NewLocalArtifactStore(dir)
		require.NoError(t, err)

		_, err = LoadPredictionModel(ctx, zap.NewNop(), store, testPredictionConfig(dir), vocabulary, catalog)
		assertServiceUnavailable(t, err)
	})

	t.Run("Missing Reference Table", func(t *testing.T) {
		dir := writeTestArtifacts(t, testForestArtifact())
		require.NoError(t, os.Remove(filepath.Join(dir, constvars.DefaultPrecautionFileName)))
		store, err := artifacts.NewLocalArtifactStore(dir)
		require.NoError(t, err)

		_, err = LoadPredictionModel(ctx, zap.NewNop(), store, testPredictionConfig(dir), vocabulary, catalog)
		assertServiceUnavailable(t, err)
	})

	t.Run("Corrupt Classifier Artifact", func(t *testing.T) {
		dir := writeTestArtifacts(t, nil)
		require.NoError(t, os.WriteFile(filepath.Join(dir, constvars.DefaultForestArtifactFileName), []byte("not json"), 0o644))
		store, err := artifacts.NewLocalArtifactStore(dir)
		require.NoError(t, err)

		_, err = LoadPredictionModel(ctx, zap.NewNop(), store, testPredictionConfig(dir), vocabulary, catalog)
		assertServiceUnavailable(t, err)
	})

	t.Run("Class Order Mismatch", func(t *testing.T) {
		artifact := testForestArtifact()
		artifact.Classes[0], artifact.Classes[1] = artifact.Classes[1], artifact.Classes[0]
		dir := writeTestArtifacts(t, artifact)
		store, err := artifacts.NewLocalArtifactStore(dir)
		require.NoError(t, err)

		_, err = LoadPredictionModel(ctx, zap.NewNop(), store, testPredictionConfig(dir), vocabulary, catalog)
		assertServiceUnavailable(t, err)
		assert.ErrorContains(t, err, "prediction contract")
	})

	t.Run("Exported Columns With Spelling Variants", func(t *testing.T) {
		require.Len(t, exportedFeatureNames, 222)
		artifact := testForestArtifact()
		artifact.FeatureNames = append([]string(nil), exportedFeatureNames...)
		spacedSkinRash := 130
		require.Equal(t, "skin rash", artifact.FeatureNames[spacedSkinRash])
		artifact.Trees[0].Feature[0] = spacedSkinRash
		dir := writeTestArtifacts(t, artifact)
		store, err := artifacts.NewLocalArtifactStore(dir)
		require.NoError(t, err)

		model, err := LoadPredictionModel(ctx, zap.NewNop(), store, testPredictionConfig(dir), vocabulary, catalog)
		require.NoError(t, err)
		defer model.Close()

		assert.Equal(t, vocabulary.Len(), model.Classifier.FeatureCount())
		encoded := NewFeatureEncoder(vocabulary).Encode([]string{"skin_rash", "chills"})
		distribution, err := model.Classifier.Score(ctx, encoded.Features)
		require.NoError(t, err)
		assert.InDelta(t, 0.8, distribution[15], 1e-9, "the spaced column reads the skin_rash position")
	})

	t.Run("Reordered Feature Columns Are Realigned", func(t *testing.T) {
		artifact := testForestArtifact()
		artifact.FeatureNames[1], artifact.FeatureNames[2] = artifact.FeatureNames[2], artifact.FeatureNames[1]
		artifact.Trees[0].Feature[0] = 2
		dir := writeTestArtifacts(t, artifact)
		store, err := artifacts.NewLocalArtifactStore(dir)
		require.NoError(t, err)

		model, err := LoadPredictionModel(ctx, zap.NewNop(), store, testPredictionConfig(dir), vocabulary, catalog)
		require.NoError(t, err)
		defer model.Close()

		encoded := NewFeatureEncoder(vocabulary).Encode([]string{"itching", "chills"})
		distribution, err := model.Classifier.Score(ctx, encoded.Features)
		require.NoError(t, err)
		assert.InDelta(t, 0.8, distribution[15], 1e-9)
	})

	t.Run("Unknown Feature Column", func(t *testing.T) {
		artifact := testForestArtifact()
		artifact.FeatureNames[5] = "not_a_symptom"
		dir := writeTestArtifacts(t, artifact)
		store, err := artifacts.NewLocalArtifactStore(dir)
		require.NoError(t, err)

		_, err = LoadPredictionModel(ctx, zap.NewNop(), store, testPredictionConfig(dir), vocabulary, catalog)
		assertServiceUnavailable(t, err)
		assert.ErrorContains(t, err, "not_a_symptom")
	})

	t.Run("Split On Missing Column", func(t *testing.T) {
		artifact := testForestArtifact()
		artifact.Trees[0].Feature[0] = len(artifact.FeatureNames)
		dir := writeTestArtifacts(t, artifact)
		store, err := artifacts.NewLocalArtifactStore(dir)
		require.NoError(t, err)

		_, err = LoadPredictionModel(ctx, zap.NewNop(), store, testPredictionConfig(dir), vocabulary, catalog)
		assertServiceUnavailable(t, err)
	})

	t.Run("Unsupported Format", func(t *testing.T) {
		dir := writeTestArtifacts(t, testForestArtifact())
		store, err := artifacts.NewLocalArtifactStore(dir)
		require.NoError(t, err)
		cfg := testPredictionConfig(dir)
		cfg.Format = "pickle"
		cfg.ModelFileName = constvars.DefaultForestArtifactFileName

		_, err = LoadPredictionModel(ctx, zap.NewNop(), store, cfg, vocabulary, catalog)
		assertServiceUnavailable(t, err)
	})
}

func TestLoadPredictionModelFromConfig(t *testing.T) {
	vocabulary := DefaultVocabulary()
	catalog := DefaultCatalog()

	t.Run("Local Directory", func(t *testing.T) {
		dir := writeTestArtifacts(t, testForestArtifact())

		model, runtimeClose, err := LoadPredictionModelFromConfig(context.Background(), zap.NewNop(), &config.DriverConfig{}, testPredictionConfig(dir), vocabulary, catalog)
		require.NoError(t, err)
		require.NotNil(t, runtimeClose)
		assert.NoError(t, model.Close())
		assert.NoError(t, runtimeClose())
	})

	t.Run("Artifact Directory Absent", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "models")

		model, runtimeClose, err := LoadPredictionModelFromConfig(context.Background(), zap.NewNop(), &config.DriverConfig{}, testPredictionConfig(dir), vocabulary, catalog)
		assert.Nil(t, model)
		require.NotNil(t, runtimeClose)
		assertServiceUnavailable(t, err)
	})

	t.Run("Location Not Configured", func(t *testing.T) {
		_, _, err := LoadPredictionModelFromConfig(context.Background(), zap.NewNop(), &config.DriverConfig{}, config.Prediction{Format: constvars.ModelFormatForest}, vocabulary, catalog)
		assertServiceUnavailable(t, err)
	})

	t.Run("ONNX Without Shared Library", func(t *testing.T) {
		dir := writeTestArtifacts(t, nil)
		cfg := testPredictionConfig(dir)
		cfg.Format = constvars.ModelFormatONNX

		_, _, err := LoadPredictionModelFromConfig(context.Background(), zap.NewNop(), &config.DriverConfig{}, cfg, vocabulary, catalog)
		assertServiceUnavailable(t, err)
	})
}
