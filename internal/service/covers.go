package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/pribylovaa/go-blog/internal/storage"
	"github.com/pribylovaa/go-blog/pkg/log"
)

// CoverUploadURL выдаёт presigned PUT URL для обложки существующей публикации.
//
// Ошибки:
//   - ErrUnavailable — хранилище обложек не сконфигурировано;
//   - ErrNotFound — публикации нет;
//   - ErrInvalidArgument — тип или размер вне ограничений.
func (s *Service) CoverUploadURL(ctx context.Context, postID uuid.UUID, contentType string, size int64) (*storage.UploadInfo, error) {
	const op = "service/covers/CoverUploadURL"

	lg := log.From(ctx).With("op", op, "post_id", postID.String())

	if s.covers == nil {
		lg.Warn("covers disabled")

		return nil, fmt.Errorf("%s: %w", op, ErrUnavailable)
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if contentType == "" {
		err := invalid("contentType", "must not be empty")
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.storage.PostByID(ctx, postID); err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	info, err := s.covers.CoverUploadURL(ctx, postID, contentType, size)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return info, nil
}

// ConfirmCover подтверждает загрузку обложки по key и сохраняет её URL в публикации.
func (s *Service) ConfirmCover(ctx context.Context, postID uuid.UUID, key string) (*models.Post, error) {
	const op = "service/covers/ConfirmCover"

	lg := log.From(ctx).With("op", op, "post_id", postID.String())

	if s.covers == nil {
		lg.Warn("covers disabled")

		return nil, fmt.Errorf("%s: %w", op, ErrUnavailable)
	}

	key = strings.TrimSpace(key)
	if key == "" {
		err := invalid("coverKey", "must not be empty")
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	current, err := s.storage.PostByID(ctx, postID)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	url, err := s.covers.CheckCoverUpload(ctx, postID, key)
	if err != nil {
		return nil, mapStorageErr(lg.With("cover_key", key), op, err)
	}

	updated, err := s.storage.UpdatePost(ctx, postID, storage.PostUpdate{CoverURL: &url})
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	s.invalidatePosts(lg, current.Slug)

	lg.Info("cover confirmed", "cover_url", url)

	return updated, nil
}
