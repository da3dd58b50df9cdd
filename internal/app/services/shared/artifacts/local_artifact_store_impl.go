package artifacts

import (
	"context"
	"diagnosis-service/internal/app/contracts"
	"diagnosis-service/internal/pkg/exceptions"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type localArtifactStore struct {
	Dir string
}

// NewLocalArtifactStore fails when dir is missing so an absent model directory surfaces at startup.
func NewLocalArtifactStore(dir string) (contracts.ArtifactStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, exceptions.ErrArtifactStoreUnavailable(err, dir)
	}
	if !info.IsDir() {
		return nil, exceptions.ErrArtifactStoreUnavailable(fmt.Errorf("%s is not a directory", dir), dir)
	}
	return &localArtifactStore{Dir: dir}, nil
}

func (s *localArtifactStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, exceptions.ErrArtifactOpen(err, name)
	}
	if name == "" || filepath.Base(name) != name {
		return nil, exceptions.ErrArtifactOpen(fmt.Errorf("artifact name must be a plain file name"), name)
	}
	file, err := os.Open(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, exceptions.ErrArtifactOpen(err, name)
	}
	return file, nil
}

func (s *localArtifactStore) Location() string {
	return s.Dir
}
