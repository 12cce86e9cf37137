package response

import (
	"encoding/json"
	"net/http"

	"pms/shared/constant"
	"pms/shared/failure"
	"pms/shared/logger"
)

// Data is the envelope for successful payloads.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError answers with the failure's status. Unclassified errors are logged and
// reported as a bare 500 so internals never reach the client.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	text := err.Error()
	if code == http.StatusInternalServerError {
		logger.ErrorWithStack(err)

		text = http.StatusText(code)
	}

	write(writer, code, Error{Error: &text})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	header := writer.Header()
	header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	header.Set("X-Content-Type-Options", "nosniff")
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
