package storage

//go:generate mockgen -source=covers.go -destination=../../mocks/covers.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UploadInfo — информация для клиента о presigned PUT загрузке.
//   - UploadURL: конечная URL для PUT-запроса.
//   - CoverKey: ключ (путь) будущего объекта в бакете.
//   - Expires: время жизни подписи.
//   - RequiredHeader: заголовки, которые клиент ОБЯЗАН передать при PUT.
type UploadInfo struct {
	UploadURL      string
	CoverKey       string
	Expires        time.Duration
	RequiredHeader map[string]string
}

// CoverStorage — контракт генерации presigned URL и подтверждения загрузки обложки.
type CoverStorage interface {
	// CoverUploadURL генерирует presigned PUT. Внутри — валидация contentType и contentLength.
	CoverUploadURL(ctx context.Context, postID uuid.UUID, contentType string, contentLength int64) (*UploadInfo, error)
	// CheckCoverUpload проверяет факт загрузки по key (наличие, тип, размер)
	// и возвращает URL, который сохраняется в публикации.
	CheckCoverUpload(ctx context.Context, postID uuid.UUID, key string) (publicURL string, err error)
}
