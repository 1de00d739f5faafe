package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-blog/internal/transport/http/errors"
)

// CoverPresign выдаёт presigned PUT для загрузки обложки напрямую в S3.
func (h *Handlers) CoverPresign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in CoverPresignRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	info, err := h.Service.CoverUploadURL(r.Context(), id, in.ContentType, in.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, presignFromInfo(info))
}

// CoverConfirm фиксирует загруженную обложку за публикацией.
func (h *Handlers) CoverConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in CoverConfirmRequest
	if err := decodeStrict(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	post, err := h.Service.ConfirmCover(r.Context(), id, in.CoverKey)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postFromModel(post))
}
