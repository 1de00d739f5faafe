package postgres

import (
	"context"
	"fmt"

	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/pribylovaa/go-blog/internal/storage"
)

// CreateCategory вставляет рубрику.
// Ошибки: storage.ErrConflict при конфликте уникальности name/slug.
func (s *Storage) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	const op = "storage/postgres/taxonomy/CreateCategory"

	var c models.Category
	err := s.db.QueryRow(ctx, `
	INSERT INTO categories (id, name, slug, description)
	VALUES ($1, $2, $3, $4)
	RETURNING id, name, slug, description
	`, category.ID, category.Name, category.Slug, category.Description).Scan(&c.ID, &c.Name, &c.Slug, &c.Description)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	return &c, nil
}

// ListCategories возвращает рубрики (по имени) с числом опубликованных публикаций.
func (s *Storage) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "storage/postgres/taxonomy/ListCategories"

	rows, err := s.db.Query(ctx, `
	SELECT c.id, c.name, c.slug, c.description, count(p.id) FILTER (WHERE p.published)
	FROM categories c LEFT JOIN posts p ON p.category_id = c.id
	GROUP BY c.id
	ORDER BY c.name
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.PostCount); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		categories = append(categories, c)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return categories, nil
}

// CreateTag вставляет метку.
// Ошибки: storage.ErrConflict при конфликте уникальности name/slug.
func (s *Storage) CreateTag(ctx context.Context, tag *models.Tag) (*models.Tag, error) {
	const op = "storage/postgres/taxonomy/CreateTag"

	var t models.Tag
	err := s.db.QueryRow(ctx, `
	INSERT INTO tags (id, name, slug)
	VALUES ($1, $2, $3)
	RETURNING id, name, slug
	`, tag.ID, tag.Name, tag.Slug).Scan(&t.ID, &t.Name, &t.Slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	return &t, nil
}

// ListTags возвращает метки (по имени) с числом опубликованных публикаций.
func (s *Storage) ListTags(ctx context.Context) ([]models.Tag, error) {
	const op = "storage/postgres/taxonomy/ListTags"

	rows, err := s.db.Query(ctx, `
	SELECT t.id, t.name, t.slug, count(p.id) FILTER (WHERE p.published)
	FROM tags t
	LEFT JOIN post_tags pt ON pt.tag_id = t.id
	LEFT JOIN posts p ON p.id = pt.post_id
	GROUP BY t.id
	ORDER BY t.name
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.PostCount); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		tags = append(tags, t)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return tags, nil
}

// Проверка выполнения контракта.
var _ storage.TaxonomyStorage = (*Storage)(nil)
