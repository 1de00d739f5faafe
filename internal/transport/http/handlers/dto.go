package handlers

import (
	"time"

	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/pribylovaa/go-blog/internal/service"
	"github.com/pribylovaa/go-blog/internal/storage"
)

// Запросы.

type CreateArticleRequest struct {
	Title string `json:"title"`
}

type UpdateArticleRequest struct {
	Title string `json:"title"`
}

type CreateItemRequest struct {
	ArticleID   string  `json:"articleId"`
	Content     *string `json:"content,omitempty"`
	Order       *int    `json:"order,omitempty"`
	IndentLevel *int    `json:"indentLevel,omitempty"`
}

type UpdateItemRequest struct {
	Content     *string `json:"content,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	Order       *int    `json:"order,omitempty"`
	IndentLevel *int    `json:"indentLevel,omitempty"`
}

type ReorderItemsRequest struct {
	TodoIDs []string `json:"todoIds"`
}

type CopyItemRequest struct {
	TargetArticleID  *string `json:"targetArticleId,omitempty"`
	InsertAfterOrder *int    `json:"insertAfterOrder,omitempty"`
}

type MoveItemRequest struct {
	Direction string `json:"direction"`
}

type IndentItemRequest struct {
	Direction string `json:"direction"`
}

type CreatePostRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt,omitempty"`
	Published  bool     `json:"published"`
	CategoryID *string  `json:"categoryId,omitempty"`
	TagIDs     []string `json:"tagIds,omitempty"`
}

// UpdatePostRequest — частичное обновление; categoryId == "" снимает рубрику.
type UpdatePostRequest struct {
	Title      *string   `json:"title,omitempty"`
	Content    *string   `json:"content,omitempty"`
	Excerpt    *string   `json:"excerpt,omitempty"`
	Published  *bool     `json:"published,omitempty"`
	CategoryID *string   `json:"categoryId,omitempty"`
	TagIDs     *[]string `json:"tagIds,omitempty"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreateTagRequest struct {
	Name string `json:"name"`
}

type CoverPresignRequest struct {
	ContentType   string `json:"contentType"`
	ContentLength int64  `json:"contentLength"`
}

type CoverConfirmRequest struct {
	CoverKey string `json:"coverKey"`
}

// Ответы.

type Item struct {
	ID          string    `json:"id"`
	ArticleID   string    `json:"articleId"`
	Content     string    `json:"content"`
	Completed   bool      `json:"completed"`
	Order       int       `json:"order"`
	IndentLevel int       `json:"indentLevel"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Todos     []Item    `json:"todos"`
}

type DeletedResponse struct {
	ID string `json:"id"`
}

type MoveResponse struct {
	Todos   []Item `json:"todos"`
	Changed bool   `json:"changed"`
}

type IndentResponse struct {
	Todo    Item `json:"todo"`
	Changed bool `json:"changed"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	PostCount   int    `json:"postCount"`
}

type Tag struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	PostCount int    `json:"postCount"`
}

type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt,omitempty"`
	CoverURL    string     `json:"coverImage,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Category    *Category  `json:"category,omitempty"`
	Tags        []Tag      `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type PostPage struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

type CoverPresignResponse struct {
	UploadURL      string            `json:"uploadUrl"`
	CoverKey       string            `json:"coverKey"`
	ExpiresSeconds int64             `json:"expiresSeconds"`
	RequiredHeader map[string]string `json:"requiredHeaders"`
}

// Конвертеры доменных моделей.

func itemFromModel(it models.Item) Item {
	return Item{
		ID:          it.ID.String(),
		ArticleID:   it.ArticleID.String(),
		Content:     it.Content,
		Completed:   it.Completed,
		Order:       it.Order,
		IndentLevel: it.IndentLevel,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func itemsFromModels(items []models.Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, itemFromModel(it))
	}
	return out
}

func articleFromModel(a *models.Article) Article {
	return Article{
		ID:        a.ID.String(),
		Title:     a.Title,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		Todos:     itemsFromModels(a.Items),
	}
}

func articlesFromModels(articles []models.Article) []Article {
	out := make([]Article, 0, len(articles))
	for i := range articles {
		out = append(out, articleFromModel(&articles[i]))
	}
	return out
}

func moveFromResult(res *service.MoveResult) MoveResponse {
	return MoveResponse{Todos: itemsFromModels(res.Items), Changed: res.Changed}
}

func indentFromResult(res *service.IndentResult) IndentResponse {
	return IndentResponse{Todo: itemFromModel(*res.Item), Changed: res.Changed}
}

func categoryFromModel(c models.Category) Category {
	return Category{
		ID:          c.ID.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		PostCount:   c.PostCount,
	}
}

func categoriesFromModels(categories []models.Category) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryFromModel(c))
	}
	return out
}

func tagFromModel(t models.Tag) Tag {
	return Tag{ID: t.ID.String(), Name: t.Name, Slug: t.Slug, PostCount: t.PostCount}
}

func tagsFromModels(tags []models.Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, tagFromModel(t))
	}
	return out
}

func postFromModel(p *models.Post) Post {
	out := Post{
		ID:          p.ID.String(),
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Excerpt:     p.Excerpt,
		CoverURL:    p.CoverURL,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		Tags:        tagsFromModels(p.Tags),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Category != nil {
		c := categoryFromModel(*p.Category)
		out.Category = &c
	}
	return out
}

func postsFromModels(posts []models.Post) []Post {
	out := make([]Post, 0, len(posts))
	for i := range posts {
		out = append(out, postFromModel(&posts[i]))
	}
	return out
}

func pageFromModel(p *models.PostPage) PostPage {
	return PostPage{
		Posts: postsFromModels(p.Posts),
		Pagination: Pagination{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      p.Total,
			TotalPages: p.TotalPages,
			HasNext:    p.HasNext,
			HasPrev:    p.HasPrev,
		},
	}
}

func presignFromInfo(info *storage.UploadInfo) CoverPresignResponse {
	return CoverPresignResponse{
		UploadURL:      info.UploadURL,
		CoverKey:       info.CoverKey,
		ExpiresSeconds: int64(info.Expires / time.Second),
		RequiredHeader: info.RequiredHeader,
	}
}
