package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-blog/internal/transport/http/errors"
)

func (h *Handlers) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Service.ListArticles(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articlesFromModels(articles))
}

func (h *Handlers) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var in CreateArticleRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	article, err := h.Service.CreateArticle(r.Context(), in.Title)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, articleFromModel(article))
}

func (h *Handlers) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	article, err := h.Service.ArticleByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articleFromModel(article))
}

func (h *Handlers) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in UpdateArticleRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	article, err := h.Service.UpdateArticle(r.Context(), id, in.Title)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articleFromModel(article))
}

func (h *Handlers) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.DeleteArticle(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DeletedResponse{ID: id.String()})
}
