package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog/internal/models"
	"github.com/pribylovaa/go-blog/internal/service"
	apierrors "github.com/pribylovaa/go-blog/internal/transport/http/errors"
)

func (h *Handlers) PublishedPosts(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.Service.PublishedPosts(r.Context(), page, limit)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageFromModel(res))
}

func (h *Handlers) PostBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.Service.PostBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postFromModel(post))
}

func (h *Handlers) PostsByCategory(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.Service.PostsByCategory(r.Context(), chi.URLParam(r, "slug"), page, limit)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageFromModel(res))
}

func (h *Handlers) PostsByTag(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.Service.PostsByTag(r.Context(), chi.URLParam(r, "slug"), page, limit)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageFromModel(res))
}

func (h *Handlers) RelatedPosts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	posts, err := h.Service.RelatedPosts(r.Context(), chi.URLParam(r, "slug"), limit)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postsFromModels(posts))
}

func (h *Handlers) PopularPosts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	posts, err := h.Service.PopularPosts(r.Context(), limit)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postsFromModels(posts))
}

// ListPosts — админский список; status=published|draft сужает выборку.
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	filter := models.PostFilter{
		CategorySlug: r.URL.Query().Get("category"),
		TagSlug:      r.URL.Query().Get("tag"),
		Page:         page,
		Limit:        limit,
	}

	switch status := r.URL.Query().Get("status"); status {
	case "":
	case "published", "draft":
		published := status == "published"
		filter.Published = &published
	default:
		apierrors.WriteError(w, r, badRequest("status", "must be published or draft"))
		return
	}

	res, err := h.Service.ListPosts(r.Context(), filter)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageFromModel(res))
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	post, err := h.Service.PostByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postFromModel(post))
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in CreatePostRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	input := service.CreatePostInput{
		Title:     in.Title,
		Content:   in.Content,
		Excerpt:   in.Excerpt,
		Published: in.Published,
	}

	if in.CategoryID != nil {
		id, err := service.ParseID("categoryId", *in.CategoryID)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}
		input.CategoryID = &id
	}

	tagIDs, err := parseIDs("tagIds", in.TagIDs)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	input.TagIDs = tagIDs

	post, err := h.Service.CreatePost(r.Context(), input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, postFromModel(post))
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in UpdatePostRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	input := service.UpdatePostInput{
		Title:     in.Title,
		Content:   in.Content,
		Excerpt:   in.Excerpt,
		Published: in.Published,
	}

	// пустая строка снимает рубрику.
	if in.CategoryID != nil {
		if *in.CategoryID == "" {
			input.ClearCategory = true
		} else {
			categoryID, err := service.ParseID("categoryId", *in.CategoryID)
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}
			input.CategoryID = &categoryID
		}
	}

	if in.TagIDs != nil {
		tagIDs, err := parseIDs("tagIds", *in.TagIDs)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}
		input.TagIDs = &tagIDs
	}

	post, err := h.Service.UpdatePost(r.Context(), id, input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postFromModel(post))
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.Service.DeletePost(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DeletedResponse{ID: id.String()})
}

func parseIDs(field string, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, v := range raw {
		id, err := service.ParseID(field, v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
