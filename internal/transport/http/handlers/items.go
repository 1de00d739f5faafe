package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog/internal/sequencer"
	"github.com/pribylovaa/go-blog/internal/service"
	apierrors "github.com/pribylovaa/go-blog/internal/transport/http/errors"
)

func (h *Handlers) CreateItem(w http.ResponseWriter, r *http.Request) {
	var in CreateItemRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	articleID, err := service.ParseID("articleId", in.ArticleID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	input := service.CreateItemInput{
		ArticleID:   articleID,
		Order:       in.Order,
		IndentLevel: in.IndentLevel,
	}
	if in.Content != nil {
		input.Content = *in.Content
	}

	item, err := h.Service.CreateItem(r.Context(), input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, itemFromModel(*item))
}

func (h *Handlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in UpdateItemRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	item, err := h.Service.UpdateItem(r.Context(), service.UpdateItemInput{
		ID:          id,
		Content:     in.Content,
		Completed:   in.Completed,
		Order:       in.Order,
		IndentLevel: in.IndentLevel,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, itemFromModel(*item))
}

func (h *Handlers) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	deleted, err := h.Service.DeleteItem(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DeletedResponse{ID: deleted.String()})
}

func (h *Handlers) ReorderItems(w http.ResponseWriter, r *http.Request) {
	var in ReorderItemsRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items, err := h.Service.ReorderItems(r.Context(), in.TodoIDs)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, itemsFromModels(items))
}

func (h *Handlers) CopyItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	// пустое тело допустимо: копия в конец той же статьи.
	var in CopyItemRequest
	if err := decodeOptional(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	input := service.CopyItemInput{ID: id, InsertAfterOrder: in.InsertAfterOrder}
	if in.TargetArticleID != nil {
		target, err := service.ParseID("targetArticleId", *in.TargetArticleID)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}
		input.TargetArticleID = &target
	}

	item, err := h.Service.CopyItem(r.Context(), input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, itemFromModel(*item))
}

func (h *Handlers) MoveItem(w http.ResponseWriter, r *http.Request) {
	id, in, ok := decodeDirection[MoveItemRequest](w, r)
	if !ok {
		return
	}

	dir, err := sequencer.ParseMoveDirection(in.Direction)
	if err != nil {
		apierrors.WriteError(w, r, badRequest("direction", "must be up or down"))
		return
	}

	res, err := h.Service.MoveItem(r.Context(), id, dir)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, moveFromResult(res))
}

func (h *Handlers) IndentItem(w http.ResponseWriter, r *http.Request) {
	id, in, ok := decodeDirection[IndentItemRequest](w, r)
	if !ok {
		return
	}

	dir, err := sequencer.ParseIndentDirection(in.Direction)
	if err != nil {
		apierrors.WriteError(w, r, badRequest("direction", "must be increase or decrease"))
		return
	}

	res, err := h.Service.IndentItem(r.Context(), id, dir)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, indentFromResult(res))
}

// decodeDirection разбирает id пункта из пути и тело с направлением.
// При ошибке ответ уже записан и ok == false.
func decodeDirection[T any](w http.ResponseWriter, r *http.Request) (uuid.UUID, T, bool) {
	var in T

	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return uuid.Nil, in, false
	}

	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return uuid.Nil, in, false
	}

	return id, in, true
}
