package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog/internal/cache"
	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/pribylovaa/go-blog/internal/storage"
	"github.com/stretchr/testify/require"
)

// mustPost — опубликованная публикация для тестов.
func mustPost(title, slug string) *models.Post {
	ts := time.Unix(1710000000, 0).UTC()
	return &models.Post{
		ID:          uuid.New(),
		Title:       title,
		Slug:        slug,
		Content:     "content",
		Published:   true,
		PublishedAt: &ts,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

// Повторное чтение страницы обслуживается кэшем.
func TestService_PublishedPosts_Cached(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	posts := []models.Post{*mustPost("A", "a")}

	ms.EXPECT().
		ListPosts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.PostFilter) ([]models.Post, int, error) {
			require.NotNil(t, f.Published)
			require.True(t, *f.Published)
			require.Equal(t, 1, f.Page)
			require.Equal(t, 10, f.Limit)
			return posts, 11, nil
		}).
		Times(1)

	for i := 0; i < 3; i++ {
		page, err := s.PublishedPosts(context.Background(), 0, 0)
		require.NoError(t, err)
		require.Equal(t, 11, page.Total)
		require.Equal(t, 2, page.TotalPages)
		require.True(t, page.HasNext)
		require.False(t, page.HasPrev)
	}

	_, ok := s.cache.Get(cache.PostsKey(cache.PageArgs{Page: 1, Limit: 10}))
	require.True(t, ok)
}

// limit выше максимума обрезается, и ключ кэша строится по нормализованным значениям.
func TestService_PublishedPosts_LimitClamped(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().
		ListPosts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.PostFilter) ([]models.Post, int, error) {
			require.Equal(t, 50, f.Limit)
			return []models.Post{}, 0, nil
		}).
		Times(1)

	_, err := s.PublishedPosts(context.Background(), 1, 500)
	require.NoError(t, err)
	_, err = s.PublishedPosts(context.Background(), 1, 50)
	require.NoError(t, err)
}

// Ошибки не кэшируются: следующий вызов снова идёт в сторадж.
func TestService_PostBySlug_ErrorsNotCached(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().PostBySlug(gomock.Any(), "missing", true).Return(nil, storage.ErrNotFound).Times(2)

	for i := 0; i < 2; i++ {
		_, err := s.PostBySlug(context.Background(), "missing")
		require.ErrorIs(t, err, ErrNotFound)
	}
}

func TestService_PostBySlug_Internal(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().PostBySlug(gomock.Any(), "x", true).Return(nil, errors.New("db down"))

	_, err := s.PostBySlug(context.Background(), "x")
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_PostsByCategoryAndTag(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	gomock.InOrder(
		ms.EXPECT().
			ListPosts(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f models.PostFilter) ([]models.Post, int, error) {
				require.Equal(t, "go", f.CategorySlug)
				require.Empty(t, f.TagSlug)
				require.Equal(t, 2, f.Page)
				return []models.Post{}, 0, nil
			}),
		ms.EXPECT().
			ListPosts(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f models.PostFilter) ([]models.Post, int, error) {
				require.Equal(t, "db", f.TagSlug)
				require.Empty(t, f.CategorySlug)
				return []models.Post{}, 0, nil
			}),
	)

	page, err := s.PostsByCategory(context.Background(), "go", 2, 5)
	require.NoError(t, err)
	require.True(t, page.HasPrev)

	_, err = s.PostsByTag(context.Background(), "db", 1, 5)
	require.NoError(t, err)

	// повтор — из кэша.
	_, err = s.PostsByCategory(context.Background(), "go", 2, 5)
	require.NoError(t, err)
}

// Похожие публикации ищутся по ID публикации, найденной через slug.
func TestService_RelatedPosts(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	post := mustPost("Go", "go")
	related := []models.Post{*mustPost("Rust", "rust")}

	ms.EXPECT().PostBySlug(gomock.Any(), "go", true).Return(post, nil)
	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
	ms.EXPECT().RelatedPosts(gomock.Any(), post, defaultRelatedLimit).Return(related, nil)

	got, err := s.RelatedPosts(context.Background(), "go", 0)
	require.NoError(t, err)
	require.Equal(t, related, got)

	// оба уровня закэшированы.
	got, err = s.RelatedPosts(context.Background(), "go", 0)
	require.NoError(t, err)
	require.Equal(t, related, got)
}

func TestService_PopularPosts_DefaultLimit(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().PopularPosts(gomock.Any(), defaultPopularLimit).Return([]models.Post{}, nil).Times(1)

	_, err := s.PopularPosts(context.Background(), -1)
	require.NoError(t, err)
	_, err = s.PopularPosts(context.Background(), 0)
	require.NoError(t, err)
}

// Админский список: без кэша и без фильтра по статусу.
func TestService_ListPosts_Uncached(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().
		ListPosts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.PostFilter) ([]models.Post, int, error) {
			require.Nil(t, f.Published)
			return []models.Post{}, 0, nil
		}).
		Times(2)

	for i := 0; i < 2; i++ {
		_, err := s.ListPosts(context.Background(), models.PostFilter{})
		require.NoError(t, err)
	}
}

func TestService_CreatePost_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.CreatePost(context.Background(), CreatePostInput{Title: "  ", Content: "x"})
	requireField(t, err, "title")

	_, err = s.CreatePost(context.Background(), CreatePostInput{Title: "!!!", Content: "x"})
	requireField(t, err, "title")

	_, err = s.CreatePost(context.Background(), CreatePostInput{Title: "Hello", Content: " "})
	requireField(t, err, "content")
}

func TestService_CreatePost_Conflict(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(nil, storage.ErrConflict)

	_, err := s.CreatePost(context.Background(), CreatePostInput{Title: "Hello", Content: "x"})
	require.ErrorIs(t, err, ErrConflict)
}

// Создание публикации сбрасывает закэшированные списки и счётчики,
// но не трогает записи других публикаций.
func TestService_CreatePost_Invalidates(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	other := mustPost("Other", "other")

	ms.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return([]models.Post{}, 0, nil).Times(2)
	ms.EXPECT().ListCategories(gomock.Any()).Return([]models.Category{}, nil).Times(2)
	ms.EXPECT().PostBySlug(gomock.Any(), "other", true).Return(other, nil).Times(1)

	_, err := s.PublishedPosts(context.Background(), 1, 10)
	require.NoError(t, err)
	_, err = s.Categories(context.Background())
	require.NoError(t, err)
	_, err = s.PostBySlug(context.Background(), "other")
	require.NoError(t, err)

	ms.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Post) (*models.Post, error) {
			require.Equal(t, "hello-world", p.Slug)
			require.Equal(t, "Hello, World", p.Title)
			require.NotEqual(t, uuid.Nil, p.ID)
			return p, nil
		})

	created, err := s.CreatePost(context.Background(), CreatePostInput{Title: "  Hello, World ", Content: "x", Published: true})
	require.NoError(t, err)
	require.Equal(t, "hello-world", created.Slug)

	_, err = s.PublishedPosts(context.Background(), 1, 10)
	require.NoError(t, err)
	_, err = s.Categories(context.Background())
	require.NoError(t, err)
	_, err = s.PostBySlug(context.Background(), "other")
	require.NoError(t, err)
}

// Смена заголовка перегенерирует slug; кэш старого slug сбрасывается.
func TestService_UpdatePost_TitleChangesSlug(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	current := mustPost("Old", "old")
	renamed := *current
	renamed.Title, renamed.Slug = "New title", "new-title"

	ms.EXPECT().PostBySlug(gomock.Any(), "old", true).Return(current, nil)
	_, err := s.PostBySlug(context.Background(), "old")
	require.NoError(t, err)

	ms.EXPECT().PostByID(gomock.Any(), current.ID).Return(current, nil)
	ms.EXPECT().
		UpdatePost(gomock.Any(), current.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, u storage.PostUpdate) (*models.Post, error) {
			require.Equal(t, "New title", *u.Title)
			require.Equal(t, "new-title", *u.Slug)
			require.Nil(t, u.Content)
			return &renamed, nil
		})

	got, err := s.UpdatePost(context.Background(), current.ID, UpdatePostInput{Title: strPtr("New title")})
	require.NoError(t, err)
	require.Equal(t, "new-title", got.Slug)

	_, ok := s.cache.Get(cache.PostKey("old"))
	require.False(t, ok)
}

func TestService_UpdatePost_Errors(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := uuid.New()

	_, err := s.UpdatePost(context.Background(), id, UpdatePostInput{Content: strPtr("  ")})
	requireField(t, err, "content")

	ms.EXPECT().PostByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)
	_, err = s.UpdatePost(context.Background(), id, UpdatePostInput{Published: boolPtr(true)})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeletePost(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	post := mustPost("Gone", "gone")

	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
	ms.EXPECT().DeletePost(gomock.Any(), post.ID).Return(nil)

	require.NoError(t, s.DeletePost(context.Background(), post.ID))

	missing := uuid.New()
	ms.EXPECT().PostByID(gomock.Any(), missing).Return(nil, storage.ErrNotFound)
	require.ErrorIs(t, s.DeletePost(context.Background(), missing), ErrNotFound)
}

// Taxonomy.

func TestService_Tags_Cached(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	tags := []models.Tag{{ID: uuid.New(), Name: "Go", Slug: "go", PostCount: 3}}
	ms.EXPECT().ListTags(gomock.Any()).Return(tags, nil).Times(1)

	for i := 0; i < 2; i++ {
		got, err := s.Tags(context.Background())
		require.NoError(t, err)
		require.Equal(t, tags, got)
	}
}

func TestService_CreateCategory(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().ListCategories(gomock.Any()).Return([]models.Category{}, nil).Times(2)
	_, err := s.Categories(context.Background())
	require.NoError(t, err)

	ms.EXPECT().
		CreateCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Category) (*models.Category, error) {
			require.Equal(t, "Web Development", c.Name)
			require.Equal(t, "web-development", c.Slug)
			require.Equal(t, "all about web", c.Description)
			return c, nil
		})

	_, err = s.CreateCategory(context.Background(), " Web Development ", " all about web ")
	require.NoError(t, err)

	// список рубрик перечитывается после создания.
	_, err = s.Categories(context.Background())
	require.NoError(t, err)
}

func TestService_CreateTag_Errors(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.CreateTag(context.Background(), "   ")
	requireField(t, err, "name")

	ms.EXPECT().CreateTag(gomock.Any(), gomock.Any()).Return(nil, storage.ErrConflict)
	_, err = s.CreateTag(context.Background(), "go")
	require.ErrorIs(t, err, ErrConflict)
}
