// handlers реализует REST-эндпойнты blog-service поверх service.Service.
// Ошибки выводятся через apierrors.WriteError, успешные ответы — через writeJSON.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog/internal/service"
)

// maxBodyBytes — ограничение размера тела запроса.
const maxBodyBytes = 1 << 20

// Handlers агрегирует зависимости хендлеров.
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
// Любая ошибка разбора — ValidationError по полю body.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil {
		return badRequest("body", "malformed JSON: "+err.Error())
	}
	return nil
}

// decodeOptional — как decodeStrict, но пустое тело допустимо.
func decodeOptional(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil && !errors.Is(err, io.EOF) {
		return badRequest("body", "malformed JSON: "+err.Error())
	}
	return nil
}

func badRequest(field, msg string) error {
	return &service.ValidationError{Field: field, Message: msg}
}

// pathID разбирает UUID из параметра маршрута.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	return service.ParseID(name, chi.URLParam(r, name))
}

// queryInt читает необязательный целочисленный query-параметр (0, если отсутствует).
func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, badRequest(name, "must be an integer")
	}

	return n, nil
}

// pageParams читает page и limit из query.
func pageParams(r *http.Request) (int, int, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return 0, 0, err
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		return 0, 0, err
	}

	return page, limit, nil
}
