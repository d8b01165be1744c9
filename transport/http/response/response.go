package response

import (
	"encoding/json"
	"net/http"
	"resort/infras/otel"
	"resort/shared/constant"
	"resort/shared/failure"
	"resort/shared/logger"

	"github.com/rs/zerolog/log"
)

// Data wraps successful payloads as {"data": ...}.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error carries a failure message as {"error": ...}.
type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(w http.ResponseWriter, code int, message string) {
	write(w, code, Message{Message: &message})
}

func WithJSON(w http.ResponseWriter, code int, payload any) {
	write(w, code, Data[any]{Data: &payload})
}

// WithError answers with the status carried by err. Errors without one are logged with
// their stack and reported as 500.
func WithError(w http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	if code >= http.StatusInternalServerError {
		logger.ErrorWithStack(err)
	}

	message := err.Error()
	write(w, code, Error{Error: &message})
}

// Fail records err on the handler scope, logs msg and answers with the status of err.
// Client errors are logged as warnings.
func Fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)

	code := failure.GetCode(err)

	event := log.Warn()
	if code >= http.StatusInternalServerError {
		event = log.Error()
	}

	event.Err(err).Int("status", code).Msg(msg)

	WithError(w, err)
}

func WithRequestLimitExceeded(w http.ResponseWriter) {
	WithMessage(w, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(w http.ResponseWriter) {
	WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(w http.ResponseWriter) {
	WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(code)

	if _, err = w.Write(body); err != nil {
		log.Warn().Err(err).Int("status", code).Msg("failed to write response body")
	}
}
