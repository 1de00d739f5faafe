package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-blog/internal/transport/http/handlers"
	"github.com/pribylovaa/go-blog/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string              // например, "/api"; если пустой — роуты регистрируются на корне.
	Metrics  *middleware.Metrics // nil — без HTTP-метрик.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(h *handlers.Handlers, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Metrics != nil {
		root.Use(opts.Metrics.Middleware())
	}
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	if opts.BasePath != "" {
		root.Route(opts.BasePath, func(r chi.Router) {
			registerRoutes(r, h)
		})
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// articles
	r.Get("/articles", h.ListArticles)
	r.Post("/articles", h.CreateArticle)
	r.Get("/articles/{id}", h.GetArticle)
	r.Put("/articles/{id}", h.UpdateArticle)
	r.Delete("/articles/{id}", h.DeleteArticle)

	// todos (пункты статьи); /todos/reorder регистрируется до /todos/{id}.
	r.Post("/todos", h.CreateItem)
	r.Put("/todos/reorder", h.ReorderItems)
	r.Put("/todos/{id}", h.UpdateItem)
	r.Delete("/todos/{id}", h.DeleteItem)
	r.Post("/todos/{id}/copy", h.CopyItem)
	r.Post("/todos/{id}/move", h.MoveItem)
	r.Post("/todos/{id}/indent", h.IndentItem)

	// public blog
	r.Get("/posts", h.PublishedPosts)
	r.Get("/posts/{slug}", h.PostBySlug)
	r.Get("/posts/{slug}/related", h.RelatedPosts)
	r.Get("/popular", h.PopularPosts)
	r.Get("/categories", h.Categories)
	r.Get("/categories/{slug}/posts", h.PostsByCategory)
	r.Get("/tags", h.Tags)
	r.Get("/tags/{slug}/posts", h.PostsByTag)

	// admin
	r.Route("/admin", func(r chi.Router) {
		r.Get("/posts", h.ListPosts)
		r.Post("/posts", h.CreatePost)
		r.Get("/posts/{id}", h.GetPost)
		r.Put("/posts/{id}", h.UpdatePost)
		r.Delete("/posts/{id}", h.DeletePost)
		r.Post("/posts/{id}/cover/presign", h.CoverPresign)
		r.Post("/posts/{id}/cover/confirm", h.CoverConfirm)
		r.Post("/categories", h.CreateCategory)
		r.Post("/tags", h.CreateTag)
	})
}
