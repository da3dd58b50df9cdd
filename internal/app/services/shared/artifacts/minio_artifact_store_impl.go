package artifacts

import (
	"context"
	"diagnosis-service/internal/app/contracts"
	"diagnosis-service/internal/pkg/exceptions"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
)

type minioArtifactStore struct {
	MinioClient *minio.Client
	BucketName  string
	Prefix      string
}

func NewMinioArtifactStore(ctx context.Context, minioClient *minio.Client, bucketName, prefix string) (contracts.ArtifactStore, error) {
	location := fmt.Sprintf("minio://%s/%s", bucketName, prefix)
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, exceptions.ErrArtifactStoreUnavailable(err, location)
	}
	if !exists {
		return nil, exceptions.ErrArtifactStoreUnavailable(fmt.Errorf("bucket %s does not exist", bucketName), location)
	}
	return &minioArtifactStore{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Prefix:      strings.Trim(prefix, "/"),
	}, nil
}

func (s *minioArtifactStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	objectName := s.objectName(name)
	object, err := s.MinioClient.GetObject(ctx, s.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrArtifactOpen(err, objectName)
	}

	// GetObject is lazy; Stat forces the request so a missing object fails here.
	_, err = object.Stat()
	if err != nil {
		object.Close()
		return nil, exceptions.ErrArtifactOpen(err, objectName)
	}
	return object, nil
}

func (s *minioArtifactStore) Location() string {
	return fmt.Sprintf("minio://%s/%s", s.BucketName, s.Prefix)
}

func (s *minioArtifactStore) objectName(name string) string {
	if s.Prefix == "" {
		return name
	}
	return path.Join(s.Prefix, name)
}
