package sequencer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/stretchr/testify/require"
)

// Тесты пакета sequencer.
//
// Покрытие:
//   - NextOrder / InsertAt / ReorderFull / Changes на снимках;
//   - AdjustIndent: идемпотентность на границах и признак изменения;
//   - Move / MoveTo: клампинг, no-op на границе, разрешение равных Order по индексу;
//   - Remove: уплотнение после удаления;
//   - чистота: входной срез не модифицируется.

// snapshot — строит пункты с заданными order в порядке перечисления.
func snapshot(orders ...int) []models.Item {
	articleID := uuid.New()
	items := make([]models.Item, 0, len(orders))
	for _, o := range orders {
		items = append(items, models.Item{ID: uuid.New(), ArticleID: articleID, Order: o})
	}
	return items
}

// ordersOf — карта ID -> Order для удобных сравнений.
func ordersOf(items []models.Item) map[uuid.UUID]int {
	m := make(map[uuid.UUID]int, len(items))
	for _, it := range items {
		m[it.ID] = it.Order
	}
	return m
}

func TestNextOrder(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, NextOrder(nil))
	require.Equal(t, 3, NextOrder(snapshot(0, 1, 2)))
	require.Equal(t, 8, NextOrder(snapshot(7, 2, 5)))
}

func TestSorted_StableOnEqualOrders(t *testing.T) {
	t.Parallel()

	items := snapshot(2, 1, 1, 0)
	got := Sorted(items)

	require.Equal(t, []uuid.UUID{items[3].ID, items[1].ID, items[2].ID, items[0].ID}, IDs(got))
	// вход не тронут.
	require.Equal(t, 2, items[0].Order)
}

func TestInsertAt_OpensSingleGap(t *testing.T) {
	t.Parallel()

	items := snapshot(0, 1, 2, 3)
	got := InsertAt(items, 2)

	orders := ordersOf(got)
	require.Equal(t, 0, orders[items[0].ID])
	require.Equal(t, 1, orders[items[1].ID])
	require.Equal(t, 3, orders[items[2].ID])
	require.Equal(t, 4, orders[items[3].ID])

	// слот 2 свободен, дублей нет.
	seen := map[int]bool{}
	for _, o := range orders {
		require.False(t, seen[o], "duplicate order %d", o)
		require.NotEqual(t, 2, o)
		seen[o] = true
	}

	// чистота.
	require.Equal(t, 2, items[2].Order)
}

func TestInsertAt_AtEnd_NoShift(t *testing.T) {
	t.Parallel()

	items := snapshot(0, 1, 2)
	got := InsertAt(items, NextOrder(items))

	require.Empty(t, Changes(items, Positions(got)))
}

func TestReorderFull_AssignsIndexes(t *testing.T) {
	t.Parallel()

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	got := ReorderFull([]uuid.UUID{c, a, b})

	require.Equal(t, []models.ItemPosition{
		{ID: c, Order: 0},
		{ID: a, Order: 1},
		{ID: b, Order: 2},
	}, got)
}

func TestChanges_OnlyDiffering(t *testing.T) {
	t.Parallel()

	items := snapshot(0, 1, 2)
	positions := ReorderFull([]uuid.UUID{items[0].ID, items[2].ID, items[1].ID})

	got := Changes(items, positions)
	require.ElementsMatch(t, []models.ItemPosition{
		{ID: items[2].ID, Order: 1},
		{ID: items[1].ID, Order: 2},
	}, got)

	unknown := models.ItemPosition{ID: uuid.New(), Order: 0}
	require.Equal(t, []models.ItemPosition{unknown}, Changes(items, []models.ItemPosition{unknown}))
}

func TestAdjustIndent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   int
		dir     IndentDirection
		want    int
		changed bool
	}{
		{"increase from 0", 0, IndentIncrease, 1, true},
		{"increase from 2", 2, IndentIncrease, 3, true},
		{"increase at max", 3, IndentIncrease, 3, false},
		{"decrease from 3", 3, IndentDecrease, 2, true},
		{"decrease at min", 0, IndentDecrease, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := AdjustIndent(tt.level, tt.dir)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.changed, changed)
		})
	}
}

func TestAdjustIndent_IdempotentAtBounds(t *testing.T) {
	t.Parallel()

	level := 0
	for i := 0; i < 10; i++ {
		level, _ = AdjustIndent(level, IndentIncrease)
	}
	require.Equal(t, models.MaxIndentLevel, level)

	for i := 0; i < 10; i++ {
		level, _ = AdjustIndent(level, IndentDecrease)
	}
	require.Equal(t, models.MinIndentLevel, level)
}

func TestMove(t *testing.T) {
	t.Parallel()

	items := snapshot(0, 1, 2)
	a, b, c := items[0].ID, items[1].ID, items[2].ID

	ids, changed, err := Move(items, b, MoveUp)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, []uuid.UUID{b, a, c}, ids)

	ids, changed, err = Move(items, b, MoveDown)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, []uuid.UUID{a, c, b}, ids)

	// упор в границы — no-op.
	ids, changed, err = Move(items, a, MoveUp)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, []uuid.UUID{a, b, c}, ids)

	_, changed, err = Move(items, c, MoveDown)
	require.NoError(t, err)
	require.False(t, changed)

	_, _, err = Move(items, uuid.New(), MoveUp)
	require.ErrorIs(t, err, ErrUnknownItem)
}

func TestMove_TiesBrokenByIndex(t *testing.T) {
	t.Parallel()

	// два пункта с одинаковым order: порядок — по индексу в срезе.
	items := snapshot(0, 1, 1)
	ids, changed, err := Move(items, items[2].ID, MoveUp)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, []uuid.UUID{items[0].ID, items[2].ID, items[1].ID}, ids)
}

func TestMoveTo_Clamps(t *testing.T) {
	t.Parallel()

	items := snapshot(0, 1, 2, 3)
	ids, changed, err := MoveTo(items, items[0].ID, 100)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, items[0].ID, ids[len(ids)-1])

	ids, changed, err = MoveTo(items, items[3].ID, -5)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, items[3].ID, ids[0])
	require.Len(t, ids, 4)
}

func TestRemove_Compacts(t *testing.T) {
	t.Parallel()

	items := snapshot(0, 1, 2, 3)
	got := Remove(items, items[1].ID)

	require.Equal(t, []models.ItemPosition{
		{ID: items[0].ID, Order: 0},
		{ID: items[2].ID, Order: 1},
		{ID: items[3].ID, Order: 2},
	}, got)
}

func TestParseDirections(t *testing.T) {
	t.Parallel()

	d, err := ParseMoveDirection(" UP ")
	require.NoError(t, err)
	require.Equal(t, MoveUp, d)

	_, err = ParseMoveDirection("left")
	require.Error(t, err)

	i, err := ParseIndentDirection("decrease")
	require.NoError(t, err)
	require.Equal(t, IndentDecrease, i)

	_, err = ParseIndentDirection("")
	require.Error(t, err)
}
