package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/pribylovaa/go-blog/internal/storage"
)

// itemColumns — единый список колонок таблицы items для SELECT/RETURNING.
const itemColumns = `id, article_id, content, completed, "order", indent_level, created_at, updated_at`

func scanItem(row pgx.Row) (*models.Item, error) {
	var it models.Item
	if err := row.Scan(
		&it.ID,
		&it.ArticleID,
		&it.Content,
		&it.Completed,
		&it.Order,
		&it.IndentLevel,
		&it.CreatedAt,
		&it.UpdatedAt,
	); err != nil {
		return nil, err
	}

	it.CreatedAt = it.CreatedAt.UTC()
	it.UpdatedAt = it.UpdatedAt.UTC()

	return &it, nil
}

func queryItems(ctx context.Context, q querier, sql string, args ...any) ([]models.Item, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		items = append(items, *it)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows: %w", rows.Err())
	}

	return items, nil
}

// itemsByArticle — пункты статьи по возрастанию order; при равных order — по времени создания.
func itemsByArticle(ctx context.Context, q querier, articleID uuid.UUID) ([]models.Item, error) {
	return queryItems(ctx, q, `
	SELECT `+itemColumns+` FROM items
	WHERE article_id = $1
	ORDER BY "order", created_at
	`, articleID)
}

func insertItem(ctx context.Context, q querier, it *models.Item) (*models.Item, error) {
	return scanItem(q.QueryRow(ctx, `
	INSERT INTO items (id, article_id, content, completed, "order", indent_level)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING `+itemColumns,
		it.ID, it.ArticleID, it.Content, it.Completed, it.Order, it.IndentLevel))
}

// ItemByID возвращает пункт по идентификатору.
// Ошибки: storage.ErrNotFound при отсутствии записи.
func (s *Storage) ItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	const op = "storage/postgres/items/ItemByID"

	it, err := scanItem(s.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return it, nil
}

// ItemsByIDs возвращает найденные пункты; отсутствующие ID пропускаются.
func (s *Storage) ItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Item, error) {
	const op = "storage/postgres/items/ItemsByIDs"

	if len(ids) == 0 {
		return []models.Item{}, nil
	}

	items, err := queryItems(ctx, s.db, `SELECT `+itemColumns+` FROM items WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// ItemsByArticle возвращает пункты статьи (order ASC).
// Ошибки: storage.ErrNotFound, если статьи нет.
func (s *Storage) ItemsByArticle(ctx context.Context, articleID uuid.UUID) ([]models.Item, error) {
	const op = "storage/postgres/items/ItemsByArticle"

	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)`, articleID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	items, err := itemsByArticle(ctx, s.db, articleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// ApplyItemBatch применяет батч изменений пунктов одной статьи в одной транзакции.
//
// Порядок:
//  1. строка статьи блокируется FOR UPDATE — параллельные батчи одной статьи
//     (в том числе из других процессов) выполняются последовательно;
//  2. delete → update → positions → insert;
//  3. updated_at статьи сдвигается;
//  4. COMMIT и чтение итогового набора пунктов внутри той же транзакции.
//
// Каждая операция над существующим пунктом обязана затронуть ровно одну строку
// этой статьи, иначе откат и storage.ErrNotFound. Прочие сбои — откат и storage.ErrTransaction.
func (s *Storage) ApplyItemBatch(ctx context.Context, batch models.ItemBatch) ([]models.Item, error) {
	const op = "storage/postgres/items/ApplyItemBatch"

	fail := func(err error) error {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return fmt.Errorf("%s: %w: %w", op, storage.ErrTransaction, err)
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fail(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var locked uuid.UUID
	if err := tx.QueryRow(ctx, `SELECT id FROM articles WHERE id = $1 FOR UPDATE`, batch.ArticleID).Scan(&locked); err != nil {
		return nil, fail(err)
	}

	if batch.Delete != uuid.Nil {
		tag, err := tx.Exec(ctx, `DELETE FROM items WHERE id = $1 AND article_id = $2`, batch.Delete, batch.ArticleID)
		if err != nil {
			return nil, fail(err)
		}
		if tag.RowsAffected() != 1 {
			return nil, fail(storage.ErrNotFound)
		}
	}

	if batch.Update != nil {
		if err := updateItem(ctx, tx, batch.ArticleID, batch.Update); err != nil {
			return nil, fail(err)
		}
	}

	if len(batch.Positions) > 0 {
		if err := applyPositions(ctx, tx, batch.ArticleID, batch.Positions); err != nil {
			return nil, fail(err)
		}
	}

	if batch.Insert != nil {
		ins := *batch.Insert
		ins.ArticleID = batch.ArticleID
		if _, err := insertItem(ctx, tx, &ins); err != nil {
			return nil, fail(mapWriteErr(err))
		}
	}

	if _, err := tx.Exec(ctx, `UPDATE articles SET updated_at = now() WHERE id = $1`, batch.ArticleID); err != nil {
		return nil, fail(err)
	}

	items, err := itemsByArticle(ctx, tx, batch.ArticleID)
	if err != nil {
		return nil, fail(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fail(err)
	}

	return items, nil
}

// updateItem выполняет частичный апдейт полей пункта; order здесь не трогается.
func updateItem(ctx context.Context, tx pgx.Tx, articleID uuid.UUID, update *models.ItemUpdate) error {
	sets := []string{"updated_at = now()"}
	args := []any{update.ID, articleID}
	count := len(args)

	if update.Content != nil {
		count++
		sets = append(sets, fmt.Sprintf("content = $%d", count))
		args = append(args, *update.Content)
	}

	if update.Completed != nil {
		count++
		sets = append(sets, fmt.Sprintf("completed = $%d", count))
		args = append(args, *update.Completed)
	}

	if update.IndentLevel != nil {
		count++
		sets = append(sets, fmt.Sprintf("indent_level = $%d", count))
		args = append(args, *update.IndentLevel)
	}

	q := fmt.Sprintf(`UPDATE items SET %s WHERE id = $1 AND article_id = $2`, strings.Join(sets, ", "))

	tag, err := tx.Exec(ctx, q, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return storage.ErrNotFound
	}

	return nil
}

// applyPositions перезаписывает order пачкой (pgx.Batch) внутри транзакции.
func applyPositions(ctx context.Context, tx pgx.Tx, articleID uuid.UUID, positions []models.ItemPosition) error {
	batch := &pgx.Batch{}
	for _, p := range positions {
		batch.Queue(`
		UPDATE items SET "order" = $1, updated_at = now()
		WHERE id = $2 AND article_id = $3
		`, p.Order, p.ID, articleID)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		tag, err := br.Exec()
		if err != nil {
			return fmt.Errorf("position %d: %w", i, err)
		}
		if tag.RowsAffected() != 1 {
			return fmt.Errorf("position %d (%s): %w", i, positions[i].ID, storage.ErrNotFound)
		}
	}

	return br.Close()
}
