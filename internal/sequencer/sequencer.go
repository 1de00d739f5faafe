// sequencer вычисляет порядковые номера и уровни отступа пунктов статьи.
//
// Все функции чистые: принимают снимок пунктов в памяти и возвращают
// новые значения, не трогая вход. Фиксация в хранилище — забота вызывающего.
package sequencer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog/internal/models"
)

// ErrUnknownItem — пункт с указанным ID отсутствует в снимке.
var ErrUnknownItem = errors.New("item is not in the snapshot")

// MoveDirection — направление перемещения на одну позицию.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// IndentDirection — направление изменения отступа.
type IndentDirection string

const (
	IndentIncrease IndentDirection = "increase"
	IndentDecrease IndentDirection = "decrease"
)

// ParseMoveDirection разбирает строковое направление перемещения.
func ParseMoveDirection(s string) (MoveDirection, error) {
	switch d := MoveDirection(strings.ToLower(strings.TrimSpace(s))); d {
	case MoveUp, MoveDown:
		return d, nil
	default:
		return "", fmt.Errorf("unknown move direction %q", s)
	}
}

// ParseIndentDirection разбирает строковое направление отступа.
func ParseIndentDirection(s string) (IndentDirection, error) {
	switch d := IndentDirection(strings.ToLower(strings.TrimSpace(s))); d {
	case IndentIncrease, IndentDecrease:
		return d, nil
	default:
		return "", fmt.Errorf("unknown indent direction %q", s)
	}
}

// Sorted возвращает копию пунктов, отсортированную по Order (ASC).
// Сортировка стабильная: при равных Order сохраняется исходный индекс.
func Sorted(items []models.Item) []models.Item {
	out := make([]models.Item, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})

	return out
}

// IDs возвращает идентификаторы пунктов в порядке следования.
func IDs(items []models.Item) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

// NextOrder возвращает max(Order)+1, либо 0 для пустого набора.
func NextOrder(items []models.Item) int {
	if len(items) == 0 {
		return 0
	}

	next := items[0].Order
	for _, it := range items[1:] {
		if it.Order > next {
			next = it.Order
		}
	}

	return next + 1
}

// InsertAt освобождает слот position: каждому пункту с Order >= position
// увеличивает Order на единицу. Возвращает новый срез.
func InsertAt(items []models.Item, position int) []models.Item {
	out := make([]models.Item, len(items))
	copy(out, items)

	for i := range out {
		if out[i].Order >= position {
			out[i].Order++
		}
	}

	return out
}

// ReorderFull назначает Order = индекс (с нуля) в переданной последовательности.
func ReorderFull(ids []uuid.UUID) []models.ItemPosition {
	positions := make([]models.ItemPosition, 0, len(ids))
	for i, id := range ids {
		positions = append(positions, models.ItemPosition{ID: id, Order: i})
	}
	return positions
}

// Positions превращает снимок в список назначений (ID, Order) как есть.
func Positions(items []models.Item) []models.ItemPosition {
	positions := make([]models.ItemPosition, 0, len(items))
	for _, it := range items {
		positions = append(positions, models.ItemPosition{ID: it.ID, Order: it.Order})
	}
	return positions
}

// Changes оставляет только те назначения, которые отличаются от снимка.
// Пункты, отсутствующие в снимке, попадают в результат всегда.
func Changes(items []models.Item, positions []models.ItemPosition) []models.ItemPosition {
	current := make(map[uuid.UUID]int, len(items))
	for _, it := range items {
		current[it.ID] = it.Order
	}

	var out []models.ItemPosition
	for _, p := range positions {
		if order, ok := current[p.ID]; ok && order == p.Order {
			continue
		}
		out = append(out, p)
	}

	return out
}

// AdjustIndent сдвигает уровень отступа на единицу в пределах [0, 3].
// Второе значение — признак того, что уровень действительно изменился;
// упор в границу изменением не считается и ошибкой не является.
func AdjustIndent(level int, dir IndentDirection) (int, bool) {
	next := level
	switch dir {
	case IndentIncrease:
		next = min(level+1, models.MaxIndentLevel)
	case IndentDecrease:
		next = max(level-1, models.MinIndentLevel)
	}

	return next, next != level
}

// Move перемещает пункт на одну позицию вверх или вниз.
// Возвращает полную новую последовательность ID и признак изменения.
func Move(items []models.Item, id uuid.UUID, dir MoveDirection) ([]uuid.UUID, bool, error) {
	sorted := Sorted(items)

	idx := indexOf(sorted, id)
	if idx < 0 {
		return nil, false, ErrUnknownItem
	}

	target := idx
	switch dir {
	case MoveUp:
		target = idx - 1
	case MoveDown:
		target = idx + 1
	}

	return moveSorted(sorted, idx, target)
}

// MoveTo переносит пункт на позицию index в отсортированной последовательности.
// index приводится к диапазону [0, len-1].
func MoveTo(items []models.Item, id uuid.UUID, index int) ([]uuid.UUID, bool, error) {
	sorted := Sorted(items)

	idx := indexOf(sorted, id)
	if idx < 0 {
		return nil, false, ErrUnknownItem
	}

	return moveSorted(sorted, idx, index)
}

// Remove возвращает уплотнённые позиции оставшихся пунктов после удаления id.
func Remove(items []models.Item, id uuid.UUID) []models.ItemPosition {
	sorted := Sorted(items)

	rest := make([]uuid.UUID, 0, len(sorted))
	for _, it := range sorted {
		if it.ID != id {
			rest = append(rest, it.ID)
		}
	}

	return ReorderFull(rest)
}

func moveSorted(sorted []models.Item, from, to int) ([]uuid.UUID, bool, error) {
	to = max(0, min(to, len(sorted)-1))

	ids := IDs(sorted)
	if to == from {
		return ids, false, nil
	}

	moved := ids[from]
	ids = append(ids[:from], ids[from+1:]...)
	ids = append(ids[:to], append([]uuid.UUID{moved}, ids[to:]...)...)

	return ids, true, nil
}

func indexOf(items []models.Item, id uuid.UUID) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
