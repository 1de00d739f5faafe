// minio предоставляет реализацию storage.CoverStorage на базе MinIO/S3.
// minio.go - конструктор клиента: нормализует endpoint, настраивает Secure/creds
// и проверяет наличие целевого бакета.
// covers.go — presigned PUT для обложки публикации и подтверждение загрузки.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/go-blog/internal/config"
	"github.com/pribylovaa/go-blog/internal/storage"
)

// CoverStorage — адаптер MinIO для обложек публикаций.
type CoverStorage struct {
	s3     config.S3Config
	cover  config.CoverConfig
	client *mclient.Client
}

// New создает клиент MinIO и выполняет fail-fast-проверку доступности бакета.
func New(ctx context.Context, s3 config.S3Config, cover config.CoverConfig) (*CoverStorage, error) {
	const op = "storage/minio/New"

	endpoint := s3.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(s3.RootUser, s3.RootPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, s3.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, s3.Bucket)
	}

	return &CoverStorage{s3: s3, cover: cover, client: client}, nil
}

// Проверка выполнения контракта.
var _ storage.CoverStorage = (*CoverStorage)(nil)
