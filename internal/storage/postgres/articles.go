package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/pribylovaa/go-blog/internal/storage"
)

const articleColumns = `id, title, created_at, updated_at`

func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	if err := row.Scan(&a.ID, &a.Title, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}

	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()

	return &a, nil
}

// CreateArticle вставляет статью и (опционально) её первый пункт в одной транзакции.
func (s *Storage) CreateArticle(ctx context.Context, article *models.Article, seed *models.Item) (*models.Article, error) {
	const op = "storage/postgres/articles/CreateArticle"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, storage.ErrTransaction, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	created, err := scanArticle(tx.QueryRow(ctx, `
	INSERT INTO articles (id, title)
	VALUES ($1, $2)
	RETURNING `+articleColumns, article.ID, article.Title))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	created.Items = []models.Item{}
	if seed != nil {
		seed.ArticleID = created.ID
		item, err := insertItem(ctx, tx, seed)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
		}
		created.Items = append(created.Items, *item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, storage.ErrTransaction, err)
	}

	return created, nil
}

// ArticleByID возвращает статью с пунктами.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) ArticleByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	const op = "storage/postgres/articles/ArticleByID"

	article, err := scanArticle(s.db.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := itemsByArticle(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	article.Items = items

	return article, nil
}

// ListArticles возвращает все статьи (updated_at DESC) с пунктами.
// Пункты загружаются одним запросом для всех статей.
func (s *Storage) ListArticles(ctx context.Context) ([]models.Article, error) {
	const op = "storage/postgres/articles/ListArticles"

	rows, err := s.db.Query(ctx, `SELECT `+articleColumns+` FROM articles ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	articles := []models.Article{}
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		a.Items = []models.Item{}
		index[a.ID] = len(articles)
		articles = append(articles, *a)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	if len(articles) == 0 {
		return articles, nil
	}

	ids := make([]uuid.UUID, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}

	items, err := queryItems(ctx, s.db, `
	SELECT `+itemColumns+` FROM items
	WHERE article_id = ANY($1)
	ORDER BY article_id, "order", created_at
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, it := range items {
		i := index[it.ArticleID]
		articles[i].Items = append(articles[i].Items, it)
	}

	return articles, nil
}

// UpdateArticle выполняет частичный апдейт и всегда сдвигает updated_at.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) UpdateArticle(ctx context.Context, id uuid.UUID, update storage.ArticleUpdate) (*models.Article, error) {
	const op = "storage/postgres/articles/UpdateArticle"

	article, err := scanArticle(s.db.QueryRow(ctx, `
	UPDATE articles
	SET title = COALESCE($2, title), updated_at = now()
	WHERE id = $1
	RETURNING `+articleColumns, id, update.Title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := itemsByArticle(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	article.Items = items

	return article, nil
}

// DeleteArticle удаляет статью, пункты удаляются каскадно (FK ON DELETE CASCADE).
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	const op = "storage/postgres/articles/DeleteArticle"

	tag, err := s.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
