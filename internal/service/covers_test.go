package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog/internal/cache"
	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/pribylovaa/go-blog/internal/storage"
	"github.com/pribylovaa/go-blog/mocks"
	"github.com/stretchr/testify/require"
)

// Без S3 обложки недоступны, сторадж не вызывается.
func TestService_Covers_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := New(mocks.NewMockStorage(ctrl), nil, newTestCache(t), testConfig())

	_, err := s.CoverUploadURL(context.Background(), uuid.New(), "image/png", 10)
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = s.ConfirmCover(context.Background(), uuid.New(), "covers/x/y.png")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestService_CoverUploadURL(t *testing.T) {
	s, ms, mc, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	post := mustPost("Cover", "cover")
	want := &storage.UploadInfo{UploadURL: "http://s3/put", CoverKey: "covers/k.png", Expires: time.Minute}

	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
	mc.EXPECT().CoverUploadURL(gomock.Any(), post.ID, "image/png", int64(1024)).Return(want, nil)

	got, err := s.CoverUploadURL(context.Background(), post.ID, " IMAGE/PNG ", 1024)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_CoverUploadURL_Errors(t *testing.T) {
	s, ms, mc, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.CoverUploadURL(context.Background(), uuid.New(), "", 10)
	requireField(t, err, "contentType")

	missing := uuid.New()
	ms.EXPECT().PostByID(gomock.Any(), missing).Return(nil, storage.ErrNotFound)
	_, err = s.CoverUploadURL(context.Background(), missing, "image/png", 10)
	require.ErrorIs(t, err, ErrNotFound)

	post := mustPost("Cover", "cover")
	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
	mc.EXPECT().CoverUploadURL(gomock.Any(), post.ID, "image/bmp", int64(10)).Return(nil, storage.ErrInvalidArgument)
	_, err = s.CoverUploadURL(context.Background(), post.ID, "image/bmp", 10)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Подтверждение сохраняет URL и сбрасывает кэш публикации.
func TestService_ConfirmCover(t *testing.T) {
	s, ms, mc, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	post := mustPost("Cover", "cover")
	key := "covers/" + post.ID.String() + "/a.png"
	url := "http://cdn/" + key

	s.cache.Set(cache.PostKey(post.Slug), post, time.Minute)

	withCover := *post
	withCover.CoverURL = url

	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
	mc.EXPECT().CheckCoverUpload(gomock.Any(), post.ID, key).Return(url, nil)
	ms.EXPECT().
		UpdatePost(gomock.Any(), post.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, u storage.PostUpdate) (*models.Post, error) {
			require.Equal(t, url, *u.CoverURL)
			require.Nil(t, u.Title)
			return &withCover, nil
		})

	got, err := s.ConfirmCover(context.Background(), post.ID, key)
	require.NoError(t, err)
	require.Equal(t, url, got.CoverURL)

	_, ok := s.cache.Get(cache.PostKey(post.Slug))
	require.False(t, ok)
}

func TestService_ConfirmCover_NotUploaded(t *testing.T) {
	s, ms, mc, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	post := mustPost("Cover", "cover")
	key := "covers/" + post.ID.String() + "/a.png"

	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
	mc.EXPECT().CheckCoverUpload(gomock.Any(), post.ID, key).Return("", storage.ErrNotFound)

	_, err := s.ConfirmCover(context.Background(), post.ID, key)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.ConfirmCover(context.Background(), post.ID, " ")
	requireField(t, err, "coverKey")
}
