package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/pribylovaa/go-blog/internal/storage"
)

// postColumns — колонки публикации вместе с рубрикой (LEFT JOIN categories c).
const postColumns = `
p.id, p.title, p.slug, p.content, p.excerpt, p.cover_url, p.published, p.published_at,
p.category_id, p.created_at, p.updated_at, c.name, c.slug, c.description
`

const postFrom = ` FROM posts p LEFT JOIN categories c ON c.id = p.category_id `

// postOrder — новые публикации первыми; черновики без published_at — в конце.
const postOrder = ` ORDER BY p.published_at DESC NULLS LAST, p.created_at DESC, p.id `

func scanPost(row pgx.Row) (*models.Post, error) {
	var (
		p                     models.Post
		catName, catSlug, des *string
	)

	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Content,
		&p.Excerpt,
		&p.CoverURL,
		&p.Published,
		&p.PublishedAt,
		&p.CategoryID,
		&p.CreatedAt,
		&p.UpdatedAt,
		&catName,
		&catSlug,
		&des,
	); err != nil {
		return nil, err
	}

	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	if p.PublishedAt != nil {
		t := p.PublishedAt.UTC()
		p.PublishedAt = &t
	}

	if p.CategoryID != nil && catName != nil {
		p.Category = &models.Category{ID: *p.CategoryID, Name: *catName}
		if catSlug != nil {
			p.Category.Slug = *catSlug
		}
		if des != nil {
			p.Category.Description = *des
		}
	}
	p.Tags = []models.Tag{}

	return &p, nil
}

func (s *Storage) queryPosts(ctx context.Context, q querier, sql string, args ...any) ([]models.Post, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		posts = append(posts, *p)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows: %w", rows.Err())
	}

	if err := loadTags(ctx, q, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// loadTags дозагружает метки для набора публикаций одним запросом.
func loadTags(ctx context.Context, q querier, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(posts))
	index := make(map[uuid.UUID]int, len(posts))
	for i, p := range posts {
		ids = append(ids, p.ID)
		index[p.ID] = i
	}

	rows, err := q.Query(ctx, `
	SELECT pt.post_id, t.id, t.name, t.slug
	FROM post_tags pt JOIN tags t ON t.id = pt.tag_id
	WHERE pt.post_id = ANY($1)
	ORDER BY t.name
	`, ids)
	if err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID uuid.UUID
			tag    models.Tag
		)
		if err := rows.Scan(&postID, &tag.ID, &tag.Name, &tag.Slug); err != nil {
			return fmt.Errorf("tags: scan row: %w", err)
		}

		i := index[postID]
		posts[i].Tags = append(posts[i].Tags, tag)
		posts[i].TagIDs = append(posts[i].TagIDs, tag.ID)
	}

	if rows.Err() != nil {
		return fmt.Errorf("tags: rows: %w", rows.Err())
	}

	return nil
}

func (s *Storage) onePost(ctx context.Context, q querier, where string, args ...any) (*models.Post, error) {
	posts, err := s.queryPosts(ctx, q, `SELECT `+postColumns+postFrom+` WHERE `+where, args...)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, storage.ErrNotFound
	}

	return &posts[0], nil
}

// replaceTags полностью заменяет набор меток публикации.
func replaceTags(ctx context.Context, tx pgx.Tx, postID uuid.UUID, tagIDs []uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM post_tags WHERE post_id = $1`, postID); err != nil {
		return err
	}

	if len(tagIDs) == 0 {
		return nil
	}

	_, err := tx.Exec(ctx, `
	INSERT INTO post_tags (post_id, tag_id)
	SELECT $1, unnest($2::uuid[])
	ON CONFLICT DO NOTHING
	`, postID, tagIDs)

	return err
}

// CreatePost вставляет публикацию и её метки в одной транзакции.
// published_at выставляется сразу, если публикация создаётся опубликованной.
// Ошибки: storage.ErrConflict — slug занят; storage.ErrNotFound — рубрика/метка не существуют.
func (s *Storage) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	const op = "storage/postgres/posts/CreatePost"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, storage.ErrTransaction, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
	INSERT INTO posts (id, title, slug, content, excerpt, cover_url, published, published_at, category_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, CASE WHEN $7 THEN now() END, $8)
	`, post.ID, post.Title, post.Slug, post.Content, post.Excerpt, post.CoverURL, post.Published, post.CategoryID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	if err := replaceTags(ctx, tx, post.ID, post.TagIDs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	created, err := s.onePost(ctx, tx, `p.id = $1`, post.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, storage.ErrTransaction, err)
	}

	return created, nil
}

// PostByID возвращает публикацию (включая черновики).
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	const op = "storage/postgres/posts/PostByID"

	post, err := s.onePost(ctx, s.db, `p.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

// PostBySlug возвращает публикацию по slug.
// Ошибки: storage.ErrNotFound — нет записи или (при publishedOnly) это черновик.
func (s *Storage) PostBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Post, error) {
	const op = "storage/postgres/posts/PostBySlug"

	post, err := s.onePost(ctx, s.db, `p.slug = $1 AND (NOT $2 OR p.published)`, slug, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

// ListPosts возвращает страницу публикаций по фильтру и их общее количество.
func (s *Storage) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, int, error) {
	const op = "storage/postgres/posts/ListPosts"

	conds := []string{"TRUE"}
	args := make([]any, 0, 5)

	if filter.Published != nil {
		args = append(args, *filter.Published)
		conds = append(conds, fmt.Sprintf("p.published = $%d", len(args)))
	}

	if filter.CategorySlug != "" {
		args = append(args, filter.CategorySlug)
		conds = append(conds, fmt.Sprintf("c.slug = $%d", len(args)))
	}

	if filter.TagSlug != "" {
		args = append(args, filter.TagSlug)
		conds = append(conds, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM post_tags pt JOIN tags t ON t.id = pt.tag_id
			WHERE pt.post_id = p.id AND t.slug = $%d)`, len(args)))
	}

	where := ` WHERE ` + strings.Join(conds, " AND ")

	var total int
	if err := s.db.QueryRow(ctx, `SELECT count(*)`+postFrom+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: count: %w", op, err)
	}

	limit := filter.Limit
	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	args = append(args, limit, filter.Offset())
	q := `SELECT ` + postColumns + postFrom + where + postOrder +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	posts, err := s.queryPosts(ctx, s.db, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return posts, total, nil
}

// UpdatePost выполняет частичный апдейт публикации и (опционально) замену меток.
// published_at выставляется при первом переходе в published и далее не меняется.
// Ошибки: storage.ErrNotFound, storage.ErrConflict.
func (s *Storage) UpdatePost(ctx context.Context, id uuid.UUID, update storage.PostUpdate) (*models.Post, error) {
	const op = "storage/postgres/posts/UpdatePost"

	sets := []string{"updated_at = now()"}
	args := []any{id}

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if update.Title != nil {
		add("title", *update.Title)
	}
	if update.Slug != nil {
		add("slug", *update.Slug)
	}
	if update.Content != nil {
		add("content", *update.Content)
	}
	if update.Excerpt != nil {
		add("excerpt", *update.Excerpt)
	}
	if update.CoverURL != nil {
		add("cover_url", *update.CoverURL)
	}
	if update.Published != nil {
		add("published", *update.Published)
		// правая часть SET видит старые значения строки.
		sets = append(sets, fmt.Sprintf(
			"published_at = CASE WHEN $%d AND published_at IS NULL THEN now() ELSE published_at END", len(args)))
	}
	switch {
	case update.ClearCategory:
		sets = append(sets, "category_id = NULL")
	case update.CategoryID != nil:
		add("category_id", *update.CategoryID)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, storage.ErrTransaction, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var updated uuid.UUID
	q := fmt.Sprintf(`UPDATE posts SET %s WHERE id = $1 RETURNING id`, strings.Join(sets, ", "))
	if err := tx.QueryRow(ctx, q, args...).Scan(&updated); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	if update.TagIDs != nil {
		if err := replaceTags(ctx, tx, id, *update.TagIDs); err != nil {
			return nil, fmt.Errorf("%s: %w", op, mapWriteErr(err))
		}
	}

	post, err := s.onePost(ctx, tx, `p.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, storage.ErrTransaction, err)
	}

	return post, nil
}

// DeletePost удаляет публикацию; связи с метками удаляются каскадно.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) DeletePost(ctx context.Context, id uuid.UUID) error {
	const op = "storage/postgres/posts/DeletePost"

	tag, err := s.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// RelatedPosts — опубликованные публикации той же рубрики или с хотя бы одной общей меткой.
func (s *Storage) RelatedPosts(ctx context.Context, post *models.Post, limit int) ([]models.Post, error) {
	const op = "storage/postgres/posts/RelatedPosts"

	if post == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	tagIDs := post.TagIDs
	if tagIDs == nil {
		tagIDs = []uuid.UUID{}
	}

	posts, err := s.queryPosts(ctx, s.db, `SELECT `+postColumns+postFrom+`
	WHERE p.published AND p.id <> $1
	AND (p.category_id = $2 OR EXISTS (
		SELECT 1 FROM post_tags pt WHERE pt.post_id = p.id AND pt.tag_id = ANY($3::uuid[])))
	`+postOrder+` LIMIT $4`, post.ID, post.CategoryID, tagIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}

// PopularPosts — последние опубликованные публикации.
func (s *Storage) PopularPosts(ctx context.Context, limit int) ([]models.Post, error) {
	const op = "storage/postgres/posts/PopularPosts"

	posts, err := s.queryPosts(ctx, s.db, `SELECT `+postColumns+postFrom+`
	WHERE p.published`+postOrder+` LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}
