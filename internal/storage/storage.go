// Package storage provides the artifact store adapter for rendered voter
// cards. Uploads are append-only: each issuance writes a uniquely named
// object and previously returned URLs are never overwritten.
package storage

import (
	"context"
	"fmt"

	"github.com/evoteng/voter-card-api/internal/system/config"
)

// ArtifactStore uploads raw bytes to durable public object storage and
// returns a stable, publicly fetchable URL.
type ArtifactStore interface {
	Put(ctx context.Context, objectPath, contentType string, data []byte) (string, error)
}

// New creates the artifact store selected by configuration.
func New(cfg *config.StorageConfig) (ArtifactStore, error) {
	switch cfg.Type {
	case "minio":
		return newMinioStore(&cfg.Minio)
	case "local":
		return newLocalStore(&cfg.Local)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
