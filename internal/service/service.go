// service содержит бизнес-логику blog-service:
//   - outline-редактор: статьи и упорядоченные пункты (создание, правка, удаление,
//     копирование, перестановка, перемещение и отступы);
//   - блог: публичные чтения через TTL-кэш и админские записи с инвалидацией;
//   - обложки публикаций (presigned URL и подтверждение загрузки).
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog/internal/cache"
	"github.com/pribylovaa/go-blog/internal/config"
	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/pribylovaa/go-blog/internal/pkg/keylock"
	"github.com/pribylovaa/go-blog/internal/storage"
)

var (
	// ErrInvalidArgument — некорректные входные данные (см. ValidationError).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — сущность не найдена.
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности (slug, имя рубрики/метки).
	ErrConflict = errors.New("conflict")
	// ErrTransaction — пакет изменений не удалось применить атомарно.
	ErrTransaction = errors.New("transaction failed")
	// ErrUnavailable — зависимость отключена конфигурацией (например, S3).
	ErrUnavailable = errors.New("unavailable")
	// ErrInternal — внутренняя ошибка сервиса.
	ErrInternal = errors.New("internal")
)

// ValidationError — ошибка валидации конкретного поля.
// errors.Is(err, ErrInvalidArgument) == true.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Service — описывает бизнес-логику blog-service.
type Service struct {
	cfg     *config.Config
	storage storage.Storage
	covers  storage.CoverStorage
	cache   *cache.Cache
	locks   *keylock.Locker[uuid.UUID]

	publishedPosts cache.Func[cache.PageArgs, *models.PostPage]
	postBySlug     cache.Func[string, *models.Post]
	categoryPosts  cache.Func[cache.SlugPageArgs, *models.PostPage]
	tagPosts       cache.Func[cache.SlugPageArgs, *models.PostPage]
	related        cache.Func[cache.RelatedArgs, []models.Post]
	popular        cache.Func[int, []models.Post]
	categories     cache.Func[struct{}, []models.Category]
	tags           cache.Func[struct{}, []models.Tag]
}

// New создает новый экземпляр Service.
// covers == nil означает, что обложки отключены (методы вернут ErrUnavailable).
func New(st storage.Storage, covers storage.CoverStorage, c *cache.Cache, cfg *config.Config) *Service {
	s := &Service{
		cfg:     cfg,
		storage: st,
		covers:  covers,
		cache:   c,
		locks:   keylock.New[uuid.UUID](),
	}

	ttl := cfg.Cache

	s.publishedPosts = cache.Wrap(c, "publishedPosts", cache.PostsKey, ttl.PostsTTL, s.loadPublishedPosts)
	s.postBySlug = cache.Wrap(c, "postBySlug", cache.PostKey, ttl.PostTTL, s.loadPostBySlug)
	s.categoryPosts = cache.Wrap(c, "categoryPosts", cache.CategoryPostsKey, ttl.PostsTTL, s.loadCategoryPosts)
	s.tagPosts = cache.Wrap(c, "tagPosts", cache.TagPostsKey, ttl.PostsTTL, s.loadTagPosts)
	s.related = cache.Wrap(c, "related", cache.RelatedKey, ttl.RelatedTTL, s.loadRelated)
	s.popular = cache.Wrap(c, "popular", cache.PopularKey, ttl.PopularTTL, s.loadPopular)
	s.categories = cache.Wrap(c, "categories", cache.CategoriesKey, ttl.TaxonomyTTL, s.loadCategories)
	s.tags = cache.Wrap(c, "tags", cache.TagsKey, ttl.TaxonomyTTL, s.loadTags)

	return s
}

// mapStorageErr переводит ошибку стораджа в ошибку сервиса и логирует её
// на уровне, соответствующем виновнику (клиент — Warn, сервер — Error).
func mapStorageErr(lg *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		lg.Warn("request aborted", "err", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s: %w", op, context.DeadlineExceeded)
		}
		return fmt.Errorf("%s: %w", op, context.Canceled)
	case errors.Is(err, storage.ErrNotFound):
		lg.Warn("not found")
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, storage.ErrConflict):
		lg.Warn("conflict")
		return fmt.Errorf("%s: %w", op, ErrConflict)
	case errors.Is(err, storage.ErrInvalidArgument):
		lg.Warn("rejected by storage", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	case errors.Is(err, storage.ErrTransaction):
		lg.Error("transaction rolled back", "err", err)
		return fmt.Errorf("%s: %w", op, ErrTransaction)
	default:
		lg.Error("storage error", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}
}
