package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/pribylovaa/go-blog/internal/sequencer"
	"github.com/pribylovaa/go-blog/internal/storage"
	"github.com/pribylovaa/go-blog/pkg/log"
)

// Входные структуры сервисного слоя.
type CreateItemInput struct {
	ArticleID   uuid.UUID
	Content     string
	Order       *int
	IndentLevel *int
}

type UpdateItemInput struct {
	ID          uuid.UUID
	Content     *string
	Completed   *bool
	Order       *int
	IndentLevel *int
}

type CopyItemInput struct {
	ID               uuid.UUID
	TargetArticleID  *uuid.UUID
	InsertAfterOrder *int
}

// MoveResult — итог перемещения: полный набор пунктов статьи и признак изменения.
type MoveResult struct {
	Items   []models.Item
	Changed bool
}

// IndentResult — итог изменения отступа.
type IndentResult struct {
	Item    *models.Item
	Changed bool
}

// lockedSnapshot захватывает блокировку статьи и читает актуальные пункты.
// Вызывающий обязан вызвать unlock, если ошибка не вернулась.
func (s *Service) lockedSnapshot(ctx context.Context, articleID uuid.UUID) ([]models.Item, func(), error) {
	unlock, err := s.locks.Lock(ctx, articleID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.storage.ItemsByArticle(ctx, articleID)
	if err != nil {
		unlock()
		return nil, nil, err
	}

	return items, unlock, nil
}

// lockedItem читает пункт, блокирует его статью и возвращает свежий снимок статьи.
// Пункт, удалённый между чтением и захватом блокировки, — storage.ErrNotFound.
func (s *Service) lockedItem(ctx context.Context, id uuid.UUID) (*models.Item, []models.Item, func(), error) {
	item, err := s.storage.ItemByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	items, unlock, err := s.lockedSnapshot(ctx, item.ArticleID)
	if err != nil {
		return nil, nil, nil, err
	}

	fresh := findItem(items, id)
	if fresh == nil {
		unlock()
		return nil, nil, nil, storage.ErrNotFound
	}

	return fresh, items, unlock, nil
}

func findItem(items []models.Item, id uuid.UUID) *models.Item {
	for i := range items {
		if items[i].ID == id {
			it := items[i]
			return &it
		}
	}
	return nil
}

// insertionBatch — сдвиг хвоста и вставка нового пункта одним батчем.
// Позиция приводится к [0, NextOrder], чтобы не образовалась дыра.
func insertionBatch(articleID uuid.UUID, items []models.Item, item *models.Item, position int) models.ItemBatch {
	position = max(0, min(position, sequencer.NextOrder(items)))
	item.Order = position

	shifted := sequencer.InsertAt(items, position)

	return models.ItemBatch{
		ArticleID: articleID,
		Positions: sequencer.Changes(items, sequencer.Positions(shifted)),
		Insert:    item,
	}
}

// CreateItem создаёт пункт в статье.
//
// Валидация:
//   - content не длиннее MaxContentLen символов;
//   - indentLevel в [0, 3] (по умолчанию 0), order >= 0.
//
// Поведение:
//   - без order пункт встаёт в конец (NextOrder);
//   - явный order приводится к NextOrder, последующие пункты сдвигаются в том же батче.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*models.Item, error) {
	const op = "service/items/CreateItem"

	lg := log.From(ctx).With("op", op, "article_id", input.ArticleID.String())

	if err := validateItemFields(&input.Content, input.Order, input.IndentLevel); err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, unlock, err := s.lockedSnapshot(ctx, input.ArticleID)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}
	defer unlock()

	item := &models.Item{
		ID:        uuid.New(),
		ArticleID: input.ArticleID,
		Content:   input.Content,
	}
	if input.IndentLevel != nil {
		item.IndentLevel = *input.IndentLevel
	}

	position := sequencer.NextOrder(items)
	if input.Order != nil {
		position = *input.Order
	}

	after, err := s.storage.ApplyItemBatch(ctx, insertionBatch(input.ArticleID, items, item, position))
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return resultItem(lg, op, after, item.ID)
}

// UpdateItem частично обновляет пункт.
//
// Поведение:
//   - content/completed/indentLevel меняются только если переданы;
//   - order меняет позицию пункта (MoveTo + полная перенумерация) в том же батче;
//   - пустой апдейт возвращает текущее состояние без записи.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*models.Item, error) {
	const op = "service/items/UpdateItem"

	lg := log.From(ctx).With("op", op, "item_id", input.ID.String())

	if err := validateItemFields(input.Content, input.Order, input.IndentLevel); err != nil {
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	item, items, unlock, err := s.lockedItem(ctx, input.ID)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}
	defer unlock()

	batch := models.ItemBatch{ArticleID: item.ArticleID}

	if input.Content != nil || input.Completed != nil || input.IndentLevel != nil {
		batch.Update = &models.ItemUpdate{
			ID:          item.ID,
			Content:     input.Content,
			Completed:   input.Completed,
			IndentLevel: input.IndentLevel,
		}
	}

	if input.Order != nil {
		ids, changed, err := sequencer.MoveTo(items, item.ID, *input.Order)
		if err != nil {
			return nil, mapStorageErr(lg, op, storage.ErrNotFound)
		}
		if changed {
			batch.Positions = sequencer.Changes(items, sequencer.ReorderFull(ids))
		}
	}

	if batch.Empty() {
		return item, nil
	}

	after, err := s.storage.ApplyItemBatch(ctx, batch)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return resultItem(lg, op, after, item.ID)
}

// DeleteItem удаляет пункт и уплотняет order оставшихся в том же батче.
func (s *Service) DeleteItem(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	const op = "service/items/DeleteItem"

	lg := log.From(ctx).With("op", op, "item_id", id.String())

	item, items, unlock, err := s.lockedItem(ctx, id)
	if err != nil {
		return uuid.Nil, mapStorageErr(lg, op, err)
	}
	defer unlock()

	remaining := make([]models.Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			remaining = append(remaining, it)
		}
	}

	batch := models.ItemBatch{
		ArticleID: item.ArticleID,
		Delete:    id,
		Positions: sequencer.Changes(remaining, sequencer.Remove(items, id)),
	}

	if _, err := s.storage.ApplyItemBatch(ctx, batch); err != nil {
		return uuid.Nil, mapStorageErr(lg, op, err)
	}

	return id, nil
}

// CopyItem клонирует пункт в ту же или другую статью.
//
// Поведение:
//   - completed у копии всегда false, content и indentLevel копируются как есть;
//   - позиция = insertAfterOrder+1, либо конец списка; не дальше NextOrder целевой статьи;
//   - сдвиг хвоста целевой статьи и вставка копии — один атомарный батч;
//   - исходный пункт не меняется.
//
// Ошибки: ErrNotFound — нет исходного пункта или целевой статьи;
// ErrInvalidArgument — insertAfterOrder < -1.
func (s *Service) CopyItem(ctx context.Context, input CopyItemInput) (*models.Item, error) {
	const op = "service/items/CopyItem"

	lg := log.From(ctx).With("op", op, "item_id", input.ID.String())

	if input.InsertAfterOrder != nil && *input.InsertAfterOrder < -1 {
		err := invalid("insertAfterOrder", "must be >= -1")
		lg.Warn("invalid argument", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	source, err := s.storage.ItemByID(ctx, input.ID)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	target := source.ArticleID
	if input.TargetArticleID != nil {
		target = *input.TargetArticleID
	}
	lg = lg.With("target_article_id", target.String())

	items, unlock, err := s.lockedSnapshot(ctx, target)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}
	defer unlock()

	position := sequencer.NextOrder(items)
	if input.InsertAfterOrder != nil {
		position = *input.InsertAfterOrder + 1
	}

	clone := &models.Item{
		ID:          uuid.New(),
		ArticleID:   target,
		Content:     source.Content,
		Completed:   false,
		IndentLevel: source.IndentLevel,
	}

	after, err := s.storage.ApplyItemBatch(ctx, insertionBatch(target, items, clone, position))
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	lg.Info("item copied", "copy_id", clone.ID.String(), "order", clone.Order)

	return resultItem(lg, op, after, clone.ID)
}

// ReorderItems назначает order = индекс для переданной последовательности пунктов.
//
// Валидация (ничего не записывается при ошибке):
//   - список не пуст, все ID — валидные UUID без повторов;
//   - все пункты существуют и принадлежат одной статье.
//
// Переписываются только переданные пункты: они получают order 0..len-1,
// остальные пункты статьи сохраняют свои order. Подмножество поэтому может
// дать повторяющиеся order; непрерывность 0..N-1 по всей статье гарантируется
// только при передаче полной перестановки её пунктов.
//
// Возвращает пункты в переданной последовательности с новыми order.
func (s *Service) ReorderItems(ctx context.Context, rawIDs []string) ([]models.Item, error) {
	const op = "service/items/ReorderItems"

	lg := log.From(ctx).With("op", op, "count", len(rawIDs))

	fail := func(err error) ([]models.Item, error) {
		lg.Warn("invalid argument", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(rawIDs) == 0 {
		return fail(invalid("items", "must not be empty"))
	}

	ids := make([]uuid.UUID, 0, len(rawIDs))
	seen := make(map[uuid.UUID]struct{}, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := ParseID("items", raw)
		if err != nil {
			return fail(err)
		}
		if _, dup := seen[id]; dup {
			return fail(invalid("items", "duplicate item "+id.String()))
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	found, err := s.storage.ItemsByIDs(ctx, ids)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	if len(found) != len(ids) {
		return fail(invalid("items", "some items do not exist"))
	}

	articleID := found[0].ArticleID
	for _, it := range found[1:] {
		if it.ArticleID != articleID {
			return fail(invalid("items", "items belong to different articles"))
		}
	}

	lg = lg.With("article_id", articleID.String())

	unlock, err := s.locks.Lock(ctx, articleID)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}
	defer unlock()

	after, err := s.storage.ApplyItemBatch(ctx, models.ItemBatch{
		ArticleID: articleID,
		Positions: sequencer.ReorderFull(ids),
	})
	if err != nil {
		// пункт удалили между проверкой и применением — это всё ещё «неизвестный ID».
		if errors.Is(err, storage.ErrNotFound) {
			return fail(invalid("items", "some items do not exist"))
		}
		return nil, mapStorageErr(lg, op, err)
	}

	byID := make(map[uuid.UUID]models.Item, len(after))
	for _, it := range after {
		byID[it.ID] = it
	}

	result := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		result = append(result, byID[id])
	}

	return result, nil
}

// MoveItem перемещает пункт на одну позицию вверх/вниз с полной перенумерацией.
// Упор в границу — Changed=false без записи.
func (s *Service) MoveItem(ctx context.Context, id uuid.UUID, dir sequencer.MoveDirection) (*MoveResult, error) {
	const op = "service/items/MoveItem"

	lg := log.From(ctx).With("op", op, "item_id", id.String(), "direction", string(dir))

	item, items, unlock, err := s.lockedItem(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}
	defer unlock()

	ids, changed, err := sequencer.Move(items, id, dir)
	if err != nil {
		return nil, mapStorageErr(lg, op, storage.ErrNotFound)
	}

	if !changed {
		return &MoveResult{Items: sequencer.Sorted(items), Changed: false}, nil
	}

	after, err := s.storage.ApplyItemBatch(ctx, models.ItemBatch{
		ArticleID: item.ArticleID,
		Positions: sequencer.Changes(items, sequencer.ReorderFull(ids)),
	})
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	return &MoveResult{Items: after, Changed: true}, nil
}

// IndentItem увеличивает/уменьшает отступ пункта в пределах [0, 3].
// Упор в границу — Changed=false без записи.
func (s *Service) IndentItem(ctx context.Context, id uuid.UUID, dir sequencer.IndentDirection) (*IndentResult, error) {
	const op = "service/items/IndentItem"

	lg := log.From(ctx).With("op", op, "item_id", id.String(), "direction", string(dir))

	item, _, unlock, err := s.lockedItem(ctx, id)
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}
	defer unlock()

	level, changed := sequencer.AdjustIndent(item.IndentLevel, dir)
	if !changed {
		return &IndentResult{Item: item, Changed: false}, nil
	}

	after, err := s.storage.ApplyItemBatch(ctx, models.ItemBatch{
		ArticleID: item.ArticleID,
		Update:    &models.ItemUpdate{ID: item.ID, IndentLevel: &level},
	})
	if err != nil {
		return nil, mapStorageErr(lg, op, err)
	}

	updated, err := resultItem(lg, op, after, item.ID)
	if err != nil {
		return nil, err
	}

	return &IndentResult{Item: updated, Changed: true}, nil
}

func validateItemFields(content *string, order, indent *int) error {
	if content != nil {
		if err := validateContent(*content); err != nil {
			return err
		}
	}
	if order != nil {
		if err := validateOrder(*order); err != nil {
			return err
		}
	}
	if indent != nil {
		if err := validateIndent(*indent); err != nil {
			return err
		}
	}
	return nil
}

// resultItem находит пункт в наборе, возвращённом батчем.
func resultItem(lg *slog.Logger, op string, items []models.Item, id uuid.UUID) (*models.Item, error) {
	it := findItem(items, id)
	if it == nil {
		lg.Error("item missing after commit")

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}
	return it, nil
}
