package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog/internal/models"
)

// Ограничения полей.
const (
	MaxTitleLen   = 200
	MaxContentLen = 1000

	// DefaultArticleTitle — заголовок статьи, созданной без названия.
	DefaultArticleTitle = "Untitled"
	// SeedItemContent — содержимое первого пункта новой статьи.
	SeedItemContent = "Start writing..."

	defaultRelatedLimit = 3
	defaultPopularLimit = 5
)

// ParseID разбирает UUID из строки; ошибка — ValidationError по полю field.
func ParseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, invalid(field, "must be a valid UUID")
	}
	return id, nil
}

func validateTitle(field, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", invalid(field, "must not be empty")
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return "", invalid(field, "must be at most 200 characters")
	}
	return title, nil
}

func validateContent(content string) error {
	if utf8.RuneCountInString(content) > MaxContentLen {
		return invalid("content", "must be at most 1000 characters")
	}
	return nil
}

func validateIndent(level int) error {
	if level < models.MinIndentLevel || level > models.MaxIndentLevel {
		return invalid("indentLevel", "must be between 0 and 3")
	}
	return nil
}

func validateOrder(order int) error {
	if order < 0 {
		return invalid("order", "must be >= 0")
	}
	return nil
}

// normalizePage приводит page/limit к допустимым значениям:
// page < 1 -> 1; limit <= 0 -> def; limit > max -> max.
func normalizePage(page, limit, def, max int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = def
	}
	if max > 0 && limit > max {
		limit = max
	}
	return page, limit
}

// slugify строит URL-slug: нижний регистр, буквы и цифры любых алфавитов,
// прочие символы схлопываются в одиночный дефис, дефисы по краям срезаются.
func slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}
