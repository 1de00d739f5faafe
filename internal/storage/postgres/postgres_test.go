package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/pribylovaa/go-blog/internal/sequencer"
	"github.com/pribylovaa/go-blog/internal/storage"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты для пакета postgres:
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют миграции из ./migrations;
// — проверяют:
//    CreateArticle / ArticleByID / ListArticles / DeleteArticle (каскад пунктов);
//    ApplyItemBatch: вставка со сдвигом, перестановка, удаление с уплотнением,
//    откат всего батча при отсутствующем пункте (ErrNotFound) и при нарушении CHECK (ErrTransaction);
//    публикации: ErrConflict по slug, published_at при первой публикации, фильтры ListPosts,
//    RelatedPosts и счётчики рубрик/меток.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(repoRootFromThisFile(), "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает PostgreSQL, применяет миграции и возвращает хранилище.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) *Storage {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "docker.io/postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, readMigration(t, "1_init.up.sql"))
	require.NoError(t, err)
	pool.Close()

	st, err := New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(st.Close)

	return st
}

// seedArticle — статья с n пунктами order 0..n-1.
func seedArticle(t *testing.T, st *Storage, n int) *models.Article {
	t.Helper()
	ctx := context.Background()

	a, err := st.CreateArticle(ctx, &models.Article{ID: uuid.New(), Title: "outline"}, nil)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		_, err := st.ApplyItemBatch(ctx, models.ItemBatch{
			ArticleID: a.ID,
			Insert:    &models.Item{ID: uuid.New(), Content: fmt.Sprintf("item %d", i), Order: i},
		})
		require.NoError(t, err)
	}

	a, err = st.ArticleByID(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, a.Items, n)

	return a
}

func orders(items []models.Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.Order)
	}
	return out
}

func TestIntegration_Articles(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()

	seed := &models.Item{ID: uuid.New(), Content: "Start writing..."}
	a, err := st.CreateArticle(ctx, &models.Article{ID: uuid.New(), Title: "first"}, seed)
	require.NoError(t, err)
	require.Len(t, a.Items, 1)
	require.Equal(t, a.ID, a.Items[0].ArticleID)

	title := "renamed"
	updated, err := st.UpdateArticle(ctx, a.ID, storage.ArticleUpdate{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Title)
	require.Len(t, updated.Items, 1)

	list, err := st.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Items, 1)

	require.NoError(t, st.DeleteArticle(ctx, a.ID))
	_, err = st.ItemByID(ctx, seed.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.ErrorIs(t, st.DeleteArticle(ctx, a.ID), storage.ErrNotFound)
	_, err = st.ArticleByID(ctx, a.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ApplyItemBatch_InsertWithShift(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()

	a := seedArticle(t, st, 3)
	shifted := sequencer.InsertAt(a.Items, 1)

	newID := uuid.New()
	items, err := st.ApplyItemBatch(ctx, models.ItemBatch{
		ArticleID: a.ID,
		Positions: sequencer.Changes(a.Items, sequencer.Positions(shifted)),
		Insert:    &models.Item{ID: newID, Content: "copy", Order: 1, IndentLevel: 2},
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, orders(items))
	require.Equal(t, newID, items[1].ID)
	require.Equal(t, 2, items[1].IndentLevel)
}

func TestIntegration_ApplyItemBatch_ReorderAndDelete(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()

	a := seedArticle(t, st, 4)
	ids := sequencer.IDs(a.Items)

	reversed := []uuid.UUID{ids[3], ids[2], ids[1], ids[0]}
	items, err := st.ApplyItemBatch(ctx, models.ItemBatch{ArticleID: a.ID, Positions: sequencer.ReorderFull(reversed)})
	require.NoError(t, err)
	require.Equal(t, reversed, sequencer.IDs(items))

	items, err = st.ApplyItemBatch(ctx, models.ItemBatch{
		ArticleID: a.ID,
		Delete:    ids[2],
		Positions: sequencer.Remove(items, ids[2]),
	})
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{ids[3], ids[1], ids[0]}, sequencer.IDs(items))
	require.Equal(t, []int{0, 1, 2}, orders(items))
}

func TestIntegration_ApplyItemBatch_RollbackOnMissingItem(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()

	a := seedArticle(t, st, 2)
	ids := sequencer.IDs(a.Items)

	_, err := st.ApplyItemBatch(ctx, models.ItemBatch{
		ArticleID: a.ID,
		Positions: []models.ItemPosition{{ID: ids[1], Order: 0}, {ID: ids[0], Order: 1}, {ID: uuid.New(), Order: 2}},
	})
	require.ErrorIs(t, err, storage.ErrNotFound)

	// ничего не применилось.
	got, err := st.ArticleByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, ids, sequencer.IDs(got.Items))

	// пункт чужой статьи — тоже «нет такого».
	other := seedArticle(t, st, 1)
	_, err = st.ApplyItemBatch(ctx, models.ItemBatch{
		ArticleID: a.ID,
		Positions: []models.ItemPosition{{ID: other.Items[0].ID, Order: 5}},
	})
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.ApplyItemBatch(ctx, models.ItemBatch{ArticleID: uuid.New(), Insert: &models.Item{ID: uuid.New()}})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ApplyItemBatch_RollbackOnConstraint(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()

	a := seedArticle(t, st, 2)
	bad := 7
	content := "changed"

	_, err := st.ApplyItemBatch(ctx, models.ItemBatch{
		ArticleID: a.ID,
		Update:    &models.ItemUpdate{ID: a.Items[0].ID, Content: &content, IndentLevel: &bad},
	})
	require.ErrorIs(t, err, storage.ErrTransaction)

	it, err := st.ItemByID(ctx, a.Items[0].ID)
	require.NoError(t, err)
	require.Equal(t, "item 0", it.Content)
}

func TestIntegration_ApplyItemBatch_CanceledContext(t *testing.T) {
	st := startPostgres(t)

	a := seedArticle(t, st, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.ApplyItemBatch(ctx, models.ItemBatch{ArticleID: a.ID, Insert: &models.Item{ID: uuid.New(), Order: 1}})
	require.ErrorIs(t, err, storage.ErrTransaction)

	items, err := st.ItemsByArticle(context.Background(), a.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestIntegration_Posts(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()

	cat, err := st.CreateCategory(ctx, &models.Category{ID: uuid.New(), Name: "Go", Slug: "go"})
	require.NoError(t, err)
	_, err = st.CreateCategory(ctx, &models.Category{ID: uuid.New(), Name: "Go", Slug: "go-2"})
	require.ErrorIs(t, err, storage.ErrConflict)

	tag, err := st.CreateTag(ctx, &models.Tag{ID: uuid.New(), Name: "Cache", Slug: "cache"})
	require.NoError(t, err)

	draft, err := st.CreatePost(ctx, &models.Post{
		ID: uuid.New(), Title: "Draft", Slug: "draft", Content: "c", CategoryID: &cat.ID, TagIDs: []uuid.UUID{tag.ID},
	})
	require.NoError(t, err)
	require.Nil(t, draft.PublishedAt)
	require.NotNil(t, draft.Category)
	require.Equal(t, "go", draft.Category.Slug)
	require.Len(t, draft.Tags, 1)

	_, err = st.CreatePost(ctx, &models.Post{ID: uuid.New(), Title: "Draft", Slug: "draft", Content: "c"})
	require.ErrorIs(t, err, storage.ErrConflict)

	_, err = st.PostBySlug(ctx, "draft", true)
	require.ErrorIs(t, err, storage.ErrNotFound)

	pub := true
	published, err := st.UpdatePost(ctx, draft.ID, storage.PostUpdate{Published: &pub})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	first := *published.PublishedAt

	// повторная публикация не сдвигает published_at.
	title := "Renamed"
	again, err := st.UpdatePost(ctx, draft.ID, storage.PostUpdate{Title: &title, Published: &pub})
	require.NoError(t, err)
	require.Equal(t, first, *again.PublishedAt)

	other, err := st.CreatePost(ctx, &models.Post{
		ID: uuid.New(), Title: "Other", Slug: "other", Content: "c", Published: true, TagIDs: []uuid.UUID{tag.ID},
	})
	require.NoError(t, err)
	require.NotNil(t, other.PublishedAt)

	posts, total, err := st.ListPosts(ctx, models.PostFilter{Published: &pub, TagSlug: "cache", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, posts, 2)

	posts, total, err = st.ListPosts(ctx, models.PostFilter{CategorySlug: "go", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, draft.ID, posts[0].ID)

	related, err := st.RelatedPosts(ctx, again, 5)
	require.NoError(t, err)
	require.Len(t, related, 1)
	require.Equal(t, other.ID, related[0].ID)

	popular, err := st.PopularPosts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, popular, 1)

	cats, err := st.ListCategories(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, cats[0].PostCount)

	tags, err := st.ListTags(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, tags[0].PostCount)

	require.NoError(t, st.DeletePost(ctx, other.ID))
	require.ErrorIs(t, st.DeletePost(ctx, other.ID), storage.ErrNotFound)
}
