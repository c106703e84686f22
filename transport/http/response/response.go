package response

import (
	"cowork/shared/constant"
	"cowork/shared/failure"
	"cowork/shared/logger"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error carries the caller-facing message and a stable kind so clients can tell
// room_unavailable from insufficient_credits without parsing text.
type Error struct {
	Error *string `json:"error,omitempty"`
	Kind  string  `json:"kind,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON wraps payload in a data envelope.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError reports a failure.Failure below 500 verbatim. Anything else is logged
// and answered with an opaque internal error.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	msg := constant.ResponseErrorInternal

	if failure.IsFailure(err) && code < http.StatusInternalServerError {
		msg = failure.GetMessage(err)
	} else {
		log.Error().Err(err).Int("code", code).Msg("request failed")
	}

	write(writer, code, Error{Error: &msg, Kind: failure.GetKind(err)})
}

// WithCSV sends data as a downloadable attachment.
func WithCSV(writer http.ResponseWriter, fileName string, data []byte) {
	header := writer.Header()
	header.Set(constant.RequestHeaderContentType, constant.ContentTypeCSV)
	header.Set(constant.RequestHeaderContentDisposition, `attachment; filename="`+fileName+`"`)

	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(data); err != nil {
		logger.ErrorWithStack(err)
	}
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
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
