package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog/internal/cache"
	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/pribylovaa/go-blog/pkg/log"
)

// Ограничения рубрик и меток.
const (
	MaxTaxonomyNameLen = 50
	MaxDescriptionLen  = 500
)

// Categories возвращает рубрики с числом опубликованных публикаций (через кэш).
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	const op = "service/taxonomy/Categories"

	categories, err := s.categories(ctx, struct{}{})
	if err != nil {
		return nil, mapStorageErr(log.From(ctx).With("op", op), op, err)
	}

	return categories, nil
}

// Tags возвращает метки с числом опубликованных публикаций (через кэш).
func (s *Service) Tags(ctx context.Context) ([]models.Tag, error) {
	const op = "service/taxonomy/Tags"

	tags, err := s.tags(ctx, struct{}{})
	if err != nil {
		return nil, mapStorageErr(log.From(ctx).With("op", op), op, err)
	}

	return tags, nil
}

// CreateCategory создаёт рубрику; slug строится из имени.
// Ошибки: ErrInvalidArgument — пустое/длинное имя; ErrConflict — имя или slug заняты.
func (s *Service) CreateCategory(ctx context.Context, name, description string) (*models.Category, error) {
	const op = "service/taxonomy/CreateCategory"

	lg := log.From(ctx).With("op", op)

	name, slug, err := nameAndSlug(name)
	if err == nil && utf8.RuneCountInString(description) > MaxDescriptionLen {
		err = invalid("description", "must be at most 500 characters")
	}
	if err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.storage.CreateCategory(ctx, &models.Category{
		ID:          uuid.New(),
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return nil, mapStorageErr(lg.With("slug", slug), op, err)
	}

	n := s.cache.Invalidate(cache.AnyOf(
		cache.Exact(cache.KeyCategories),
		cache.Prefix(cache.PrefixPostsCategory),
	))
	lg.Info("category created", "category_id", created.ID.String(), "invalidated", n)

	return created, nil
}

// CreateTag создаёт метку; slug строится из имени.
func (s *Service) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	const op = "service/taxonomy/CreateTag"

	lg := log.From(ctx).With("op", op)

	name, slug, err := nameAndSlug(name)
	if err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.storage.CreateTag(ctx, &models.Tag{ID: uuid.New(), Name: name, Slug: slug})
	if err != nil {
		return nil, mapStorageErr(lg.With("slug", slug), op, err)
	}

	n := s.cache.Invalidate(cache.AnyOf(
		cache.Exact(cache.KeyTags),
		cache.Prefix(cache.PrefixPostsTag),
	))
	lg.Info("tag created", "tag_id", created.ID.String(), "invalidated", n)

	return created, nil
}

func nameAndSlug(raw string) (string, string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", "", invalid("name", "must not be empty")
	}
	if utf8.RuneCountInString(name) > MaxTaxonomyNameLen {
		return "", "", invalid("name", "must be at most 50 characters")
	}

	slug := slugify(name)
	if slug == "" {
		return "", "", invalid("name", "must contain letters or digits")
	}

	return name, slug, nil
}

func (s *Service) loadCategories(ctx context.Context, _ struct{}) ([]models.Category, error) {
	return s.storage.ListCategories(ctx)
}

func (s *Service) loadTags(ctx context.Context, _ struct{}) ([]models.Tag, error) {
	return s.storage.ListTags(ctx)
}
