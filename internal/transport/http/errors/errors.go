// errors стандартизирует ответы об ошибках HTTP-слоя blog-service.
// На вход он принимает ошибку сервисного слоя, а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей;
//   - имя поля для ошибок валидации (service.ValidationError).
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/pribylovaa/go-blog/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// Field — поле запроса, не прошедшее валидацию (только для invalid_argument).
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервиса в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг.
//   - *service.ValidationError - 400 с полем и сообщением валидации.
//   - sentinel-ошибки сервиса и контекста маппятся через baseFromService().
//   - прочее - 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{
			Error: APIError{
				Code:    "internal",
				Message: "internal error",
			},
		}
	}

	var ve *service.ValidationError
	if stderrors.As(err, &ve) {
		return http.StatusBadRequest, ErrorResponse{
			Error: APIError{
				Code:    "invalid_argument",
				Message: ve.Message,
				Field:   ve.Field,
			},
		}
	}

	status, code, msg := baseFromService(err)
	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// baseFromService — базовый маппинг ошибок сервиса -> HTTP/FE-код/сообщение:
//   - ErrInvalidArgument -> 400
//   - ErrNotFound -> 404
//   - ErrConflict -> 409 (slug/имя заняты)
//   - ErrTransaction -> 500 (батч откатился целиком)
//   - ErrUnavailable -> 503 (хранилище обложек не сконфигурировано)
//   - context.Canceled -> 499 (клиент закрыл соединение)
//   - context.DeadlineExceeded -> 504 (истёк таймаут запроса)
//   - прочее -> 500/internal
func baseFromService(err error) (int, string, string) {
	switch {
	case stderrors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case stderrors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case stderrors.Is(err, service.ErrConflict):
		return http.StatusConflict, "already_exists", "already exists"
	case stderrors.Is(err, service.ErrTransaction):
		return http.StatusInternalServerError, "transaction_failed", "changes were not applied"
	case stderrors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable", "service unavailable"
	case stderrors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
