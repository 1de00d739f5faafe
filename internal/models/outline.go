// models содержит доменные сущности blog-service.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Границы уровня отступа пункта.
const (
	MinIndentLevel = 0
	MaxIndentLevel = 3
)

// Article — статья outline-редактора, владеет упорядоченным набором пунктов.
//
// Особенности:
//   - ID — UUIDv4;
//   - Items отсортированы по Order (ASC), если загружены вместе со статьёй;
//   - временные метки — в UTC.
type Article struct {
	ID        uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []Item
}

// Item — пункт (todo) статьи.
//
// Особенности:
//   - Order — позиция в статье, среди живых пунктов образует 0..N-1;
//   - IndentLevel — визуальная глубина в диапазоне [0, 3], не связь родитель/потомок;
//   - ArticleID не меняется после создания (копирование создаёт новый пункт).
type Item struct {
	ID          uuid.UUID
	ArticleID   uuid.UUID
	Content     string
	Completed   bool
	Order       int
	IndentLevel int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemPosition — назначение порядкового номера одному пункту.
type ItemPosition struct {
	ID    uuid.UUID
	Order int
}

// ItemUpdate — частичное обновление полей пункта (nil — поле не меняется).
// Order здесь отсутствует: порядок меняется только через ItemBatch.Positions.
type ItemUpdate struct {
	ID          uuid.UUID
	Content     *string
	Completed   *bool
	IndentLevel *int
}

// ItemBatch — набор изменений пунктов одной статьи, применяемый атомарно.
//
// Порядок применения внутри транзакции:
//  1. Delete (если не uuid.Nil);
//  2. Update (если не nil);
//  3. Positions — перезапись order;
//  4. Insert (если не nil).
type ItemBatch struct {
	ArticleID uuid.UUID
	Delete    uuid.UUID
	Update    *ItemUpdate
	Positions []ItemPosition
	Insert    *Item
}

// Empty сообщает, что батч не содержит ни одной операции.
func (b ItemBatch) Empty() bool {
	return b.Delete == uuid.Nil && b.Update == nil && len(b.Positions) == 0 && b.Insert == nil
}
