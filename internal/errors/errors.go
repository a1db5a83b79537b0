// errors приводит ошибки сервисного слоя к HTTP-ответам feed-service:
// статус плюс конверт {"error":{"code","message","request_id"}} без внутренних деталей.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/petershoe2005/GatherU-sub000/internal/service"
)

// StatusClientClosedRequest — клиент ушёл раньше ответа (nginx 499).
const StatusClientClosedRequest = 499

// ErrUnauthenticated — токен зрителя передан, но не прошёл проверку.
var ErrUnauthenticated = stderrors.New("unauthenticated")

// APIError — тело ошибки для клиента.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект ответа.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

type rule struct {
	target  error
	status  int
	code    string
	message string
}

// rules проверяются по порядку, побеждает первое совпадение errors.Is.
var rules = []rule{
	{service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument", "invalid argument"},
	{ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated", "unauthenticated"},
	{service.ErrNotFound, http.StatusNotFound, "not_found", "not found"},
	{context.Canceled, StatusClientClosedRequest, "canceled", "canceled"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"},
}

var internalRule = rule{status: http.StatusInternalServerError, code: "internal", message: "internal error"}

// ToHTTP возвращает статус и тело ответа для err.
// Неизвестные ошибки и nil дают 500/internal.
func ToHTTP(err error) (int, ErrorResponse) {
	r := match(err)

	return r.status, ErrorResponse{Error: APIError{Code: r.code, Message: r.message}}
}

// WriteError пишет ошибку в ответ; request_id берётся из X-Request-Id запроса.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)
	resp.Error.RequestID = r.Header.Get("X-Request-Id")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func match(err error) rule {
	if err == nil {
		return internalRule
	}

	for _, r := range rules {
		if stderrors.Is(err, r.target) {
			return r
		}
	}

	return internalRule
}
