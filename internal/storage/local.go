package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evoteng/voter-card-api/internal/system/config"
)

// localStore writes artifacts under a directory on the local filesystem. It
// exists for development and tests; it honors the same append-only contract
// as the object storage adapter.
type localStore struct {
	directory     string
	publicBaseURL string
}

func newLocalStore(cfg *config.LocalStorageConfig) (*localStore, error) {
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &localStore{
		directory:     cfg.Directory,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Put writes the bytes to a new file and returns its public URL. An existing
// file at the same path is an error, never an overwrite.
func (s *localStore) Put(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.directory, filepath.FromSlash(objectPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create object %s: %w", objectPath, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("failed to write object %s: %w", objectPath, err)
	}

	return s.publicBaseURL + "/" + objectPath, nil
}
