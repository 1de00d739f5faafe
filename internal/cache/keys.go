package cache

import (
	"fmt"

	"github.com/google/uuid"
)

// Префиксы ключей для групповой инвалидации.
const (
	PrefixPosts         = "posts:"
	PrefixPost          = "post:"
	PrefixPostsCategory = "posts:category:"
	PrefixPostsTag      = "posts:tag:"
	PrefixRelated       = "related:"
	PrefixPopular       = "popular:"

	KeyCategories = "categories:all"
	KeyTags       = "tags:all"
)

// PageArgs — аргументы постраничной выборки.
type PageArgs struct {
	Page  int
	Limit int
}

// SlugPageArgs — аргументы постраничной выборки по slug рубрики/метки.
type SlugPageArgs struct {
	Slug  string
	Page  int
	Limit int
}

// RelatedArgs — аргументы выборки связанных публикаций.
type RelatedArgs struct {
	PostID uuid.UUID
	Limit  int
}

// PostsKey — страница опубликованных публикаций.
func PostsKey(a PageArgs) string {
	return fmt.Sprintf("%s%d:%d", PrefixPosts, a.Page, a.Limit)
}

// PostKey — одна публикация по slug.
func PostKey(slug string) string {
	return PrefixPost + slug
}

// CategoryPostsKey — страница публикаций рубрики.
func CategoryPostsKey(a SlugPageArgs) string {
	return fmt.Sprintf("%s%s:%d:%d", PrefixPostsCategory, a.Slug, a.Page, a.Limit)
}

// TagPostsKey — страница публикаций метки.
func TagPostsKey(a SlugPageArgs) string {
	return fmt.Sprintf("%s%s:%d:%d", PrefixPostsTag, a.Slug, a.Page, a.Limit)
}

// RelatedKey — связанные публикации.
func RelatedKey(a RelatedArgs) string {
	return fmt.Sprintf("%s%s:%d", PrefixRelated, a.PostID, a.Limit)
}

// PopularKey — популярные публикации.
func PopularKey(limit int) string {
	return fmt.Sprintf("%s%d", PrefixPopular, limit)
}

// CategoriesKey и TagsKey игнорируют аргумент: список один на весь блог.
func CategoriesKey(struct{}) string { return KeyCategories }

func TagsKey(struct{}) string { return KeyTags }
