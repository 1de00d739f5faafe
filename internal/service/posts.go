package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog/internal/cache"
	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/pribylovaa/go-blog/internal/storage"
	"github.com/pribylovaa/go-blog/pkg/log"
)

// MaxExcerptLen — ограничение на длину анонса публикации.
const MaxExcerptLen = 500

// CreatePostInput — входные данные для создания публикации.
type CreatePostInput struct {
	Title      string
	Content    string
	Excerpt    string
	Published  bool
	CategoryID *uuid.UUID
	TagIDs     []uuid.UUID
}

// UpdatePostInput — частичное обновление публикации (nil — поле не меняется).
type UpdatePostInput struct {
	Title         *string
	Content       *string
	Excerpt       *string
	Published     *bool
	CategoryID    *uuid.UUID
	ClearCategory bool
	TagIDs        *[]uuid.UUID
}

// PublishedPosts возвращает страницу опубликованных публикаций (через кэш).
func (s *Service) PublishedPosts(ctx context.Context, page, limit int) (*models.PostPage, error) {
	const op = "service/posts/PublishedPosts"

	page, limit = s.page(page, limit)

	res, err := s.publishedPosts(ctx, cache.PageArgs{Page: page, Limit: limit})
	if err != nil {
		return nil, mapStorageErr(log.From(ctx).With("op", op), op, err)
	}

	return res, nil
}

// PostBySlug возвращает опубликованную публикацию по slug (через кэш).
// Черновик для публичного чтения не существует — ErrNotFound.
func (s *Service) PostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	const op = "service/posts/PostBySlug"

	lg := log.From(ctx).With("op", op, "slug", slug)

	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, mapStorageErr(lg, op, storage.ErrNotFound)
	}

	post, err := s.postBySlug(ctx, slug)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return post, nil
}

// PostsByCategory возвращает страницу опубликованных публикаций рубрики.
func (s *Service) PostsByCategory(ctx context.Context, slug string, page, limit int) (*models.PostPage, error) {
	const op = "service/posts/PostsByCategory"

	page, limit = s.page(page, limit)

	res, err := s.categoryPosts(ctx, cache.SlugPageArgs{Slug: slug, Page: page, Limit: limit})
	if err != nil {
		return nil, mapStorageErr(log.From(ctx).With("op", op, "category", slug), op, err)
	}

	return res, nil
}

// PostsByTag возвращает страницу опубликованных публикаций с меткой.
func (s *Service) PostsByTag(ctx context.Context, slug string, page, limit int) (*models.PostPage, error) {
	const op = "service/posts/PostsByTag"

	page, limit = s.page(page, limit)

	res, err := s.tagPosts(ctx, cache.SlugPageArgs{Slug: slug, Page: page, Limit: limit})
	if err != nil {
		return nil, mapStorageErr(log.From(ctx).With("op", op, "tag", slug), op, err)
	}

	return res, nil
}

// RelatedPosts возвращает похожие публикации: та же рубрика или общая метка.
// Ключ кэша строится по ID публикации, поэтому смена slug его не ломает.
func (s *Service) RelatedPosts(ctx context.Context, slug string, limit int) ([]models.Post, error) {
	const op = "service/posts/RelatedPosts"

	lg := log.From(ctx).With("op", op, "slug", slug)

	post, err := s.postBySlug(ctx, slug)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	limit = min(limit, s.cfg.Limits.Max)

	posts, err := s.related(ctx, cache.RelatedArgs{PostID: post.ID, Limit: limit})
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return posts, nil
}

// PopularPosts возвращает последние опубликованные публикации.
func (s *Service) PopularPosts(ctx context.Context, limit int) ([]models.Post, error) {
	const op = "service/posts/PopularPosts"

	if limit <= 0 {
		limit = defaultPopularLimit
	}
	limit = min(limit, s.cfg.Limits.Max)

	posts, err := s.popular(ctx, limit)
	if err != nil {
		return nil, mapStorageErr(log.From(ctx).With("op", op), op, err)
	}

	return posts, nil
}

// ListPosts — админский список публикаций (черновики включены, без кэша).
func (s *Service) ListPosts(ctx context.Context, filter models.PostFilter) (*models.PostPage, error) {
	const op = "service/posts/ListPosts"

	filter.Page, filter.Limit = s.page(filter.Page, filter.Limit)

	posts, total, err := s.storage.ListPosts(ctx, filter)
	if err != nil {
		return nil, mapStorageErr(log.From(ctx).With("op", op), op, err)
	}

	return models.NewPostPage(posts, total, filter.Page, filter.Limit), nil
}

// PostByID — админское чтение публикации (включая черновик).
func (s *Service) PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	const op = "service/posts/PostByID"

	post, err := s.storage.PostByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(log.From(ctx).With("op", op, "post_id", id.String()), op, err)
	}

	return post, nil
}

// CreatePost создаёт публикацию.
//
// Валидация:
//   - title и content обязательны, title не длиннее MaxTitleLen;
//   - slug строится из title и не может быть пустым.
//
// Ошибки: ErrConflict — slug занят; ErrNotFound — рубрика или метка не существуют.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	const op = "service/posts/CreatePost"

	lg := log.From(ctx).With("op", op)

	title, slug, err := titleAndSlug(input.Title)
	if err == nil {
		err = validatePostBody(&input.Content, &input.Excerpt)
	}
	if err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	post := &models.Post{
		ID:         uuid.New(),
		Title:      title,
		Slug:       slug,
		Content:    input.Content,
		Excerpt:    strings.TrimSpace(input.Excerpt),
		Published:  input.Published,
		CategoryID: input.CategoryID,
		TagIDs:     input.TagIDs,
	}

	created, err := s.storage.CreatePost(ctx, post)
	if err != nil {
		return nil, mapStorageErr(lg.With("slug", slug), op, err)
	}

	s.invalidatePosts(lg, created.Slug)

	lg.Info("post created", "post_id", created.ID.String(), "slug", created.Slug)

	return created, nil
}

// UpdatePost частично обновляет публикацию.
// Смена title перегенерирует slug; кэш старого и нового slug сбрасывается.
func (s *Service) UpdatePost(ctx context.Context, id uuid.UUID, input UpdatePostInput) (*models.Post, error) {
	const op = "service/posts/UpdatePost"

	lg := log.From(ctx).With("op", op, "post_id", id.String())

	update := storage.PostUpdate{
		Content:       input.Content,
		Published:     input.Published,
		CategoryID:    input.CategoryID,
		ClearCategory: input.ClearCategory,
		TagIDs:        input.TagIDs,
	}

	if input.Title != nil {
		title, slug, err := titleAndSlug(*input.Title)
		if err != nil {
			lg.Warn("invalid argument", "err", err)

			return nil, fmt.Errorf("%s: %w", op, err)
		}
		update.Title, update.Slug = &title, &slug
	}

	if input.Content != nil && strings.TrimSpace(*input.Content) == "" {
		err := invalid("content", "must not be empty")
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if input.Excerpt != nil {
		excerpt := strings.TrimSpace(*input.Excerpt)
		if utf8.RuneCountInString(excerpt) > MaxExcerptLen {
			err := invalid("excerpt", "must be at most 500 characters")
			lg.Warn("invalid argument", "err", err)

			return nil, fmt.Errorf("%s: %w", op, err)
		}
		update.Excerpt = &excerpt
	}

	current, err := s.storage.PostByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	updated, err := s.storage.UpdatePost(ctx, id, update)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	s.invalidatePosts(lg, current.Slug, updated.Slug)

	return updated, nil
}

// DeletePost удаляет публикацию и сбрасывает связанные записи кэша.
func (s *Service) DeletePost(ctx context.Context, id uuid.UUID) error {
	const op = "service/posts/DeletePost"

	lg := log.From(ctx).With("op", op, "post_id", id.String())

	current, err := s.storage.PostByID(ctx, id)
	if err != nil {
		return mapStorageErr(lg, op, err)
	}

	if err := s.storage.DeletePost(ctx, id); err != nil {
		return mapStorageErr(lg, op, err)
	}

	s.invalidatePosts(lg, current.Slug)

	lg.Info("post deleted")

	return nil
}

// invalidatePosts сбрасывает всё, что могло измениться после записи публикации:
// списки, похожие, популярные, счётчики рубрик/меток и записи по slug.
func (s *Service) invalidatePosts(lg *slog.Logger, slugs ...string) {
	matchers := []cache.Matcher{
		cache.Prefix(cache.PrefixPosts),
		cache.Prefix(cache.PrefixRelated),
		cache.Prefix(cache.PrefixPopular),
		cache.Exact(cache.KeyCategories),
		cache.Exact(cache.KeyTags),
	}
	for _, slug := range slugs {
		matchers = append(matchers, cache.Exact(cache.PostKey(slug)))
	}

	n := s.cache.Invalidate(cache.AnyOf(matchers...))
	lg.Debug("cache invalidated", "entries", n)
}

func (s *Service) page(page, limit int) (int, int) {
	return normalizePage(page, limit, s.cfg.Limits.Default, s.cfg.Limits.Max)
}

func titleAndSlug(raw string) (string, string, error) {
	title, err := validateTitle("title", raw)
	if err != nil {
		return "", "", err
	}

	slug := slugify(title)
	if slug == "" {
		return "", "", invalid("title", "must contain letters or digits")
	}

	return title, slug, nil
}

func validatePostBody(content, excerpt *string) error {
	if strings.TrimSpace(*content) == "" {
		return invalid("content", "must not be empty")
	}
	if utf8.RuneCountInString(strings.TrimSpace(*excerpt)) > MaxExcerptLen {
		return invalid("excerpt", "must be at most 500 characters")
	}
	return nil
}

// Загрузчики для кэширующих обёрток: ходят в сторадж без кэша.

func (s *Service) loadPublishedPosts(ctx context.Context, a cache.PageArgs) (*models.PostPage, error) {
	return s.loadPage(ctx, models.PostFilter{Page: a.Page, Limit: a.Limit})
}

func (s *Service) loadCategoryPosts(ctx context.Context, a cache.SlugPageArgs) (*models.PostPage, error) {
	return s.loadPage(ctx, models.PostFilter{CategorySlug: a.Slug, Page: a.Page, Limit: a.Limit})
}

func (s *Service) loadTagPosts(ctx context.Context, a cache.SlugPageArgs) (*models.PostPage, error) {
	return s.loadPage(ctx, models.PostFilter{TagSlug: a.Slug, Page: a.Page, Limit: a.Limit})
}

func (s *Service) loadPage(ctx context.Context, filter models.PostFilter) (*models.PostPage, error) {
	published := true
	filter.Published = &published

	posts, total, err := s.storage.ListPosts(ctx, filter)
	if err != nil {
		return nil, err
	}

	return models.NewPostPage(posts, total, filter.Page, filter.Limit), nil
}

func (s *Service) loadPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return s.storage.PostBySlug(ctx, slug, true)
}

func (s *Service) loadRelated(ctx context.Context, a cache.RelatedArgs) ([]models.Post, error) {
	post, err := s.storage.PostByID(ctx, a.PostID)
	if err != nil {
		return nil, err
	}

	return s.storage.RelatedPosts(ctx, post, a.Limit)
}

func (s *Service) loadPopular(ctx context.Context, limit int) ([]models.Post, error) {
	return s.storage.PopularPosts(ctx, limit)
}
