package artifacts

import (
	"context"
	"diagnosis-service/internal/app/config"
	"diagnosis-service/internal/pkg/constvars"
	"diagnosis-service/internal/pkg/exceptions"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseArtifactURI(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected Location
	}{
		{"Bare Path", "/srv/models", Location{Scheme: constvars.ArtifactSchemeFile, Dir: "/srv/models"}},
		{"Relative Path", "./models/", Location{Scheme: constvars.ArtifactSchemeFile, Dir: "models"}},
		{"File URI", "file:///srv/models", Location{Scheme: constvars.ArtifactSchemeFile, Dir: "/srv/models"}},
		{"S3 URI", "s3://models/diagnosis/v1/", Location{Scheme: constvars.ArtifactSchemeS3, BucketName: "models", Prefix: "diagnosis/v1"}},
		{"Minio URI Without Prefix", "minio://models", Location{Scheme: constvars.ArtifactSchemeMinio, BucketName: "models"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			location, err := ParseArtifactURI(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *location)
		})
	}

	t.Run("Missing", func(t *testing.T) {
		_, err := ParseArtifactURI("  ")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
	})

	t.Run("Unsupported Scheme", func(t *testing.T) {
		_, err := ParseArtifactURI("ftp://models/diagnosis")
		assert.Error(t, err)
	})

	t.Run("Object Storage Without Bucket", func(t *testing.T) {
		_, err := ParseArtifactURI("s3:///diagnosis")
		assert.Error(t, err)
	})
}

func TestLocalArtifactStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "symptom_Description.csv"), []byte("Disease,Description\n"), 0o644))

	t.Run("Opens Artifact", func(t *testing.T) {
		store, err := NewLocalArtifactStore(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, store.Location())

		reader, err := store.Open(context.Background(), "symptom_Description.csv")
		require.NoError(t, err)
		defer reader.Close()

		content, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Equal(t, "Disease,Description\n", string(content))
	})

	t.Run("Missing Artifact", func(t *testing.T) {
		store, err := NewLocalArtifactStore(dir)
		require.NoError(t, err)

		_, err = store.Open(context.Background(), "ExtraTrees.json")
		assert.Error(t, err)
	})

	t.Run("Rejects Nested Names", func(t *testing.T) {
		store, err := NewLocalArtifactStore(dir)
		require.NoError(t, err)

		_, err = store.Open(context.Background(), "../secrets.csv")
		assert.Error(t, err)
	})

	t.Run("Missing Directory", func(t *testing.T) {
		_, err := NewLocalArtifactStore(filepath.Join(dir, "absent"))
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
	})

	t.Run("Resolved From Configuration", func(t *testing.T) {
		store, err := NewArtifactStore(context.Background(), zap.NewNop(), &config.DriverConfig{}, config.Prediction{ArtifactURI: "file://" + dir})
		require.NoError(t, err)
		assert.Equal(t, dir, store.Location())
	})
}
