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

// CreateArticle создаёт статью с одним начальным пунктом.
//
// Валидация:
//   - пустой (после TrimSpace) заголовок заменяется на DefaultArticleTitle;
//   - заголовок длиннее MaxTitleLen символов — ValidationError.
func (s *Service) CreateArticle(ctx context.Context, title string) (*models.Article, error) {
	const op = "service/articles/CreateArticle"

	lg := log.From(ctx).With("op", op)

	if strings.TrimSpace(title) == "" {
		title = DefaultArticleTitle
	}

	title, err := validateTitle("title", title)
	if err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	article := &models.Article{ID: uuid.New(), Title: title}
	seed := &models.Item{ID: uuid.New(), Content: SeedItemContent}

	created, err := s.storage.CreateArticle(ctx, article, seed)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	lg.Info("article created", "article_id", created.ID.String())

	return created, nil
}

// ArticleByID возвращает статью вместе с пунктами (order ASC).
func (s *Service) ArticleByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	const op = "service/articles/ArticleByID"

	lg := log.From(ctx).With("op", op, "article_id", id.String())

	article, err := s.storage.ArticleByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return article, nil
}

// ListArticles возвращает все статьи, последние изменённые — первыми.
func (s *Service) ListArticles(ctx context.Context) ([]models.Article, error) {
	const op = "service/articles/ListArticles"

	articles, err := s.storage.ListArticles(ctx)
	if err != nil {
		return nil, mapStorageErr(log.From(ctx).With("op", op), op, err)
	}

	return articles, nil
}

// UpdateArticle переименовывает статью. Пустой заголовок — ValidationError.
func (s *Service) UpdateArticle(ctx context.Context, id uuid.UUID, title string) (*models.Article, error) {
	const op = "service/articles/UpdateArticle"

	lg := log.From(ctx).With("op", op, "article_id", id.String())

	title, err := validateTitle("title", title)
	if err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	article, err := s.storage.UpdateArticle(ctx, id, storage.ArticleUpdate{Title: &title})
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return article, nil
}

// DeleteArticle удаляет статью вместе со всеми её пунктами.
// Выполняется под блокировкой статьи, чтобы не пересечься с батчем пунктов.
func (s *Service) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	const op = "service/articles/DeleteArticle"

	lg := log.From(ctx).With("op", op, "article_id", id.String())

	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		return mapStorageErr(lg, op, err)
	}
	defer unlock()

	if err := s.storage.DeleteArticle(ctx, id); err != nil {
		return mapStorageErr(lg, op, err)
	}

	lg.Info("article deleted")

	return nil
}
