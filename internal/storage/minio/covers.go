package minio

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/go-blog/internal/storage"
)

// coverExt — расширение объекта по типу содержимого.
var coverExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

func coverPrefix(postID uuid.UUID) string {
	return "covers/" + postID.String() + "/"
}

// CoverUploadURL генерирует presigned PUT URL для загрузки обложки.
// Ключ вида "covers/<postID>/<uuid>.<ext>"; клиент обязан передать RequiredHeader при PUT.
// Ошибки: storage.ErrInvalidArgument — тип или размер вне ограничений.
func (s *CoverStorage) CoverUploadURL(ctx context.Context, postID uuid.UUID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "storage/minio/covers/CoverUploadURL"

	if contentLength <= 0 || contentLength > s.cover.MaxSizeBytes {
		return nil, fmt.Errorf("%s: size %d: %w", op, contentLength, storage.ErrInvalidArgument)
	}

	if !slices.Contains(s.cover.AllowedContentTypes, contentType) {
		return nil, fmt.Errorf("%s: content type %q: %w", op, contentType, storage.ErrInvalidArgument)
	}

	key := path.Join("covers", postID.String(), uuid.NewString()+coverExt[contentType])

	u, err := s.client.PresignedPutObject(ctx, s.s3.Bucket, key, s.s3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.UploadInfo{
		UploadURL: u.String(),
		CoverKey:  key,
		Expires:   s.s3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": strconv.FormatInt(contentLength, 10),
		},
	}, nil
}

// CheckCoverUpload подтверждает факт загрузки по key: объект существует,
// принадлежит публикации и удовлетворяет ограничениям размера/типа.
// Возвращает публичный URL (PublicBaseURL + key) либо сам key, если база не задана.
func (s *CoverStorage) CheckCoverUpload(ctx context.Context, postID uuid.UUID, key string) (string, error) {
	const op = "storage/minio/covers/CheckCoverUpload"

	if !strings.HasPrefix(key, coverPrefix(postID)) {
		return "", fmt.Errorf("%s: foreign key: %w", op, storage.ErrInvalidArgument)
	}

	info, err := s.client.StatObject(ctx, s.s3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		resp := mclient.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if info.Size <= 0 || info.Size > s.cover.MaxSizeBytes {
		return "", fmt.Errorf("%s: size %d: %w", op, info.Size, storage.ErrInvalidArgument)
	}

	if ct := info.ContentType; ct != "" && !slices.Contains(s.cover.AllowedContentTypes, ct) {
		return "", fmt.Errorf("%s: content type %q: %w", op, ct, storage.ErrInvalidArgument)
	}

	if s.s3.PublicBaseURL == "" {
		return key, nil
	}

	return strings.TrimRight(s.s3.PublicBaseURL, "/") + "/" + key, nil
}
