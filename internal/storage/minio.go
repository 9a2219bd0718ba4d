package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/evoteng/voter-card-api/internal/system/config"
	"github.com/evoteng/voter-card-api/internal/system/log"
)

// minioStore uploads artifacts to an S3-compatible bucket.
type minioStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	logger        *log.Logger
}

func newMinioStore(cfg *config.MinioConfig) (*minioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	return &minioStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        log.GetLogger().With(log.String(log.LoggerKeyComponentName, "MinioStore")),
	}, nil
}

// Put uploads the given bytes and returns the public URL of the new object.
func (s *minioStore) Put(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectPath, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		s.logger.Error("Object upload failed",
			log.String("bucket", s.bucket),
			log.String("object", objectPath),
			log.Error(err))
		return "", fmt.Errorf("failed to upload object %s: %w", objectPath, err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, objectPath)
	s.logger.Debug("Object uploaded",
		log.String("object", objectPath),
		log.Int("size_bytes", len(data)))
	return url, nil
}
