package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-blog/internal/transport/http/errors"
)

func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.Categories(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categoriesFromModels(categories))
}

func (h *Handlers) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Service.Tags(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tagsFromModels(tags))
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in CreateCategoryRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	category, err := h.Service.CreateCategory(r.Context(), in.Name, in.Description)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, categoryFromModel(*category))
}

func (h *Handlers) CreateTag(w http.ResponseWriter, r *http.Request) {
	var in CreateTagRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	tag, err := h.Service.CreateTag(r.Context(), in.Name)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tagFromModel(*tag))
}
