package models

import (
	"time"

	"github.com/google/uuid"
)

// Post — публикация блога.
//
// Особенности:
//   - Slug уникален и генерируется из Title;
//   - PublishedAt выставляется при первой публикации и дальше не меняется;
//   - Category и Tags заполняются стораджем при чтении.
type Post struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	CoverURL    string
	Published   bool
	PublishedAt *time.Time
	CategoryID  *uuid.UUID
	Category    *Category
	TagIDs      []uuid.UUID
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category — рубрика публикаций.
// PostCount заполняется только в списках.
type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	PostCount   int
}

// Tag — метка публикаций.
type Tag struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	PostCount int
}

// PostFilter — параметры выборки публикаций.
//
// Особенности:
//   - Published == nil — без фильтра по статусу;
//   - Page нумеруется с 1, Limit уже нормализован сервисом.
type PostFilter struct {
	Published    *bool
	CategorySlug string
	TagSlug      string
	Page         int
	Limit        int
}

// Offset возвращает смещение для skip/limit выборки.
func (f PostFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// PostPage — страница публикаций с метаданными пагинации.
type PostPage struct {
	Posts      []Post
	Total      int
	Page       int
	Limit      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// NewPostPage собирает страницу и вычисляет производные поля.
func NewPostPage(posts []Post, total, page, limit int) *PostPage {
	p := &PostPage{
		Posts: posts,
		Total: total,
		Page:  page,
		Limit: limit,
	}

	if limit > 0 {
		p.TotalPages = (total + limit - 1) / limit
		p.HasNext = page*limit < total
	}
	p.HasPrev = page > 1

	return p
}
