// errors стандартизирует ответы об ошибках HTTP-слоя stories-сервиса.
// На вход он принимает доменную ошибку (сервисного слоя либо апстрим-клиента),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Маппинг:
//   - service.ErrInvalidArgument -> 400 (некорректные page/page_size);
//   - hackernews.ErrTimeout      -> 504 (таймаут апстрима);
//   - hackernews.ErrUnavailable  -> 503 (апстрим недоступен);
//   - hackernews.ErrMalformed    -> 503 (нечитаемый ответ апстрима; для
//     клиента неотличим от недоступности — повтор запроса уместен);
//   - прочее -> 500/internal.
package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/go-hackernews-stories/internal/hackernews"
	"github.com/pribylovaa/go-hackernews-stories/internal/service"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - неизвестная ошибка - 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)
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

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// base — базовый маппинг доменная ошибка -> HTTP/FE-код/сообщение.
func base(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "page and page_size must be positive integers"
	case errors.Is(err, hackernews.ErrTimeout):
		return http.StatusGatewayTimeout, "upstream_timeout", "upstream timed out"
	case errors.Is(err, hackernews.ErrUnavailable):
		return http.StatusServiceUnavailable, "upstream_unavailable", "upstream unavailable"
	case errors.Is(err, hackernews.ErrMalformed):
		return http.StatusServiceUnavailable, "upstream_unavailable", "upstream unavailable"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
