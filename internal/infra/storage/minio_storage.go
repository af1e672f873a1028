// Package storage implements the object-storage collaborator on MinIO.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"solhub/config"
	"solhub/internal/domain/lifecycle"
	"solhub/internal/domain/service"
	"solhub/internal/errors"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type minioStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	uploadExpiry  time.Duration
}

// New creates the MinIO-backed FileStorage. The bucket is created on start
// when missing so a fresh deployment needs no manual provisioning step.
func New(params Params) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		return nil, errors.New("storage config must be provided")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MinIO client")
	}

	s := &minioStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		uploadExpiry:  cfg.UploadExpiry,
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := s.ensureBucket(ctx); err != nil {
				return err
			}

			params.Logger.LogAttrs(ctx, slog.LevelInfo, "MinIO storage ready",
				slog.String("endpoint", cfg.Endpoint),
				slog.String("bucket", cfg.Bucket),
			)

			return nil
		},
	})

	return s, nil
}

func (s *minioStorage) ensureBucket(ctx context.Context) error {
	found, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrap(err, "failed to check bucket existence")
	}
	if !found {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return errors.Wrap(err, "failed to create bucket")
		}
	}

	return nil
}

// PresignUpload allocates an object key under the enterprise's prefix and
// returns a short-lived PUT URL next to the object's stable public URL.
func (s *minioStorage) PresignUpload(ctx context.Context, enterpriseID string, upload service.FileUpload) (*service.PresignedFile, error) {
	objectKey := buildObjectKey(enterpriseID, upload.Extension)

	uploadURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectKey, s.uploadExpiry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to presign upload")
	}

	return &service.PresignedFile{
		UploadURL: uploadURL.String(),
		PublicURL: fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, objectKey),
	}, nil
}

// Remove deletes the object behind a previously issued public URL.
// URLs that do not point into this bucket are rejected.
func (s *minioStorage) Remove(ctx context.Context, publicURL string) error {
	objectKey, err := s.objectKeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrap(err, "failed to remove object")
	}

	return nil
}

func (s *minioStorage) objectKeyFromPublicURL(publicURL string) (string, error) {
	prefix := fmt.Sprintf("%s/%s/", s.publicBaseURL, s.bucket)
	if !strings.HasPrefix(publicURL, prefix) {
		return "", errors.Errorf("url %q is not served from this storage", publicURL)
	}

	return strings.TrimPrefix(publicURL, prefix), nil
}

// buildObjectKey namespaces objects per enterprise. The random UUID keeps two
// uploads with identical file names from colliding.
func buildObjectKey(enterpriseID, extension string) string {
	key := fmt.Sprintf("%s/%s", enterpriseID, uuid.NewString())
	if ext := strings.TrimPrefix(extension, "."); ext != "" {
		key += "." + ext
	}

	return key
}
