// storage определяет контракты слоя хранилищ blog-service.
//
// Реализации:
//   - postgres — статьи, пункты, публикации, рубрики и метки;
//   - minio — загрузка обложек публикаций.
package storage

//go:generate mockgen -source=storage.go -destination=../../mocks/storage.go -package=mocks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — нарушение уникальности (например, slug публикации).
	ErrConflict = errors.New("conflict")
	// ErrTransaction — транзакция откатилась целиком, изменения не видны.
	ErrTransaction = errors.New("transaction failed")
	// ErrInvalidArgument — нарушены ограничения запроса (тип/размер обложки и т.п.).
	ErrInvalidArgument = errors.New("invalid argument")
)

// ArticleUpdate — частичное обновление статьи.
type ArticleUpdate struct {
	Title *string
}

// PostUpdate — частичное обновление публикации.
// Параметры задаются pointer-полями: только непустые указатели обновляются в БД.
// TagIDs != nil полностью заменяет набор меток; ClearCategory снимает рубрику.
// published_at выставляется реализацией при первой публикации.
type PostUpdate struct {
	Title         *string
	Slug          *string
	Content       *string
	Excerpt       *string
	Published     *bool
	CategoryID    *uuid.UUID
	ClearCategory bool
	TagIDs        *[]uuid.UUID
	CoverURL      *string
}

// ArticleStorage — контракт репозитория статей.
type ArticleStorage interface {
	// CreateArticle создаёт статью и, если seed != nil, её первый пункт — в одной транзакции.
	CreateArticle(ctx context.Context, article *models.Article, seed *models.Item) (*models.Article, error)
	// ArticleByID возвращает статью вместе с пунктами (Order ASC).
	ArticleByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	// ListArticles возвращает все статьи (updated_at DESC) с пунктами.
	ListArticles(ctx context.Context) ([]models.Article, error)
	// UpdateArticle обновляет заголовок и updated_at.
	UpdateArticle(ctx context.Context, id uuid.UUID, update ArticleUpdate) (*models.Article, error)
	// DeleteArticle удаляет статью; пункты удаляются каскадно.
	DeleteArticle(ctx context.Context, id uuid.UUID) error
}

// ItemStorage — контракт репозитория пунктов.
type ItemStorage interface {
	// ItemByID возвращает пункт по идентификатору.
	ItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	// ItemsByIDs возвращает найденные пункты; отсутствующие ID просто пропускаются.
	ItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Item, error)
	// ItemsByArticle возвращает пункты статьи (Order ASC).
	ItemsByArticle(ctx context.Context, articleID uuid.UUID) ([]models.Item, error)
	// ApplyItemBatch применяет батч атомарно и возвращает пункты статьи после фиксации.
	// Ошибки: ErrNotFound — статья или пункт батча отсутствуют; ErrTransaction — иной сбой, откат.
	ApplyItemBatch(ctx context.Context, batch models.ItemBatch) ([]models.Item, error)
}

// PostStorage — контракт репозитория публикаций.
type PostStorage interface {
	// CreatePost вставляет публикацию и её метки. ErrConflict — slug занят.
	CreatePost(ctx context.Context, post *models.Post) (*models.Post, error)
	// PostByID возвращает публикацию с рубрикой и метками.
	PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	// PostBySlug возвращает публикацию по slug; publishedOnly скрывает черновики.
	PostBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Post, error)
	// ListPosts возвращает страницу публикаций и общее число подходящих под фильтр.
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, int, error)
	// UpdatePost выполняет частичное обновление. ErrConflict — slug занят.
	UpdatePost(ctx context.Context, id uuid.UUID, update PostUpdate) (*models.Post, error)
	// DeletePost удаляет публикацию.
	DeletePost(ctx context.Context, id uuid.UUID) error
	// RelatedPosts — опубликованные публикации той же рубрики или с общей меткой, кроме самой post.
	RelatedPosts(ctx context.Context, post *models.Post, limit int) ([]models.Post, error)
	// PopularPosts — последние опубликованные публикации.
	PopularPosts(ctx context.Context, limit int) ([]models.Post, error)
}

// TaxonomyStorage — контракт репозитория рубрик и меток.
type TaxonomyStorage interface {
	// CreateCategory создаёт рубрику. ErrConflict — имя или slug заняты.
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	// ListCategories возвращает рубрики с числом опубликованных публикаций.
	ListCategories(ctx context.Context) ([]models.Category, error)
	// CreateTag создаёт метку. ErrConflict — имя или slug заняты.
	CreateTag(ctx context.Context, tag *models.Tag) (*models.Tag, error)
	// ListTags возвращает метки с числом опубликованных публикаций.
	ListTags(ctx context.Context) ([]models.Tag, error)
}

// Storage — верхнеуровневый интерфейс хранилища.
type Storage interface {
	ArticleStorage
	ItemStorage
	PostStorage
	TaxonomyStorage
	Close()
}
