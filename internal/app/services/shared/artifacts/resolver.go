package artifacts

import (
	"context"
	"diagnosis-service/internal/app/config"
	"diagnosis-service/internal/app/contracts"
	"diagnosis-service/internal/app/drivers/storage"
	"diagnosis-service/internal/pkg/constvars"
	"diagnosis-service/internal/pkg/exceptions"
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

type Location struct {
	Scheme string
	// Dir is set for file locations.
	Dir string
	// BucketName and Prefix are set for object storage locations.
	BucketName string
	Prefix     string
}

// ParseArtifactURI accepts file:///abs/dir, a bare path, s3://bucket/prefix and minio://bucket/prefix.
func ParseArtifactURI(rawURI string) (*Location, error) {
	rawURI = strings.TrimSpace(rawURI)
	if rawURI == "" {
		return nil, exceptions.ErrArtifactLocationMissing()
	}

	if !strings.Contains(rawURI, "://") {
		return &Location{Scheme: constvars.ArtifactSchemeFile, Dir: filepath.Clean(rawURI)}, nil
	}

	parsed, err := url.Parse(rawURI)
	if err != nil {
		return nil, exceptions.ErrArtifactLocationInvalid(err, rawURI)
	}

	switch strings.ToLower(parsed.Scheme) {
	case constvars.ArtifactSchemeFile:
		dir := parsed.Path
		if parsed.Host != "" && parsed.Host != "localhost" {
			dir = parsed.Host + parsed.Path
		}
		if dir == "" {
			return nil, exceptions.ErrArtifactLocationInvalid(errors.New("file location has no path"), rawURI)
		}
		return &Location{Scheme: constvars.ArtifactSchemeFile, Dir: filepath.Clean(dir)}, nil
	case constvars.ArtifactSchemeS3, constvars.ArtifactSchemeMinio:
		if parsed.Host == "" {
			return nil, exceptions.ErrArtifactLocationInvalid(errors.New("object storage location has no bucket"), rawURI)
		}
		return &Location{
			Scheme:     strings.ToLower(parsed.Scheme),
			BucketName: parsed.Host,
			Prefix:     strings.Trim(parsed.Path, "/"),
		}, nil
	default:
		return nil, exceptions.ErrArtifactLocationInvalid(errors.New("unsupported scheme "+parsed.Scheme), rawURI)
	}
}

// NewArtifactStore resolves the configured location once into a concrete store.
func NewArtifactStore(ctx context.Context, log *zap.Logger, driverConfig *config.DriverConfig, prediction config.Prediction) (contracts.ArtifactStore, error) {
	location, err := ParseArtifactURI(prediction.ArtifactURI)
	if err != nil {
		return nil, err
	}

	switch location.Scheme {
	case constvars.ArtifactSchemeFile:
		log.Info("Resolving local artifact store",
			zap.String(constvars.LoggingArtifactLocation, location.Dir),
		)
		return NewLocalArtifactStore(location.Dir)
	default:
		log.Info("Resolving object storage artifact store",
			zap.String(constvars.LoggingArtifactLocation, prediction.ArtifactURI),
		)
		minioClient, err := storage.NewMinio(driverConfig)
		if err != nil {
			return nil, exceptions.ErrArtifactStoreUnavailable(err, prediction.ArtifactURI)
		}
		return NewMinioArtifactStore(ctx, minioClient, location.BucketName, location.Prefix)
	}
}
