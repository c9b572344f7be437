package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/shivam77kk/healthcare-online/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// AvatarStorage persists doctor avatar images and returns a serveable URL.
type AvatarStorage interface {
	Upload(ctx context.Context, filename, contentType string, file io.Reader, size int64) (string, error)
}

type minioAvatarStorage struct {
	client *minio.Client
	cfg    config.MinioConfig
}

func NewAvatarStorage(cfg config.MinioConfig) (AvatarStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &minioAvatarStorage{client: client, cfg: cfg}, nil
}

func (s *minioAvatarStorage) Upload(ctx context.Context, filename, contentType string, file io.Reader, size int64) (string, error) {
	// Avoid collisions between uploads with the same original filename.
	objectName := fmt.Sprintf("avatars/%s%s", uuid.New().String(), path.Ext(filename))

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Endpoint, s.cfg.Bucket, objectName), nil
}
