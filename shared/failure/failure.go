package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that is safe to return to the caller. Code is the HTTP status
// and Kind a stable machine-readable reason, so clients can pick a remediation
// without parsing Message.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

const (
	KindBadRequest   = "bad_request"
	KindUnauthorized = "unauthorized"
	KindForbidden    = "forbidden"
	KindNotFound     = "not_found"
	KindConflict     = "conflict"
	KindInternal     = "internal"
)

var (
	ForbiddenError          = New(http.StatusForbidden, KindForbidden, "You don't have the required permissions")
	ResourceRestrictedError = New(http.StatusForbidden, KindForbidden, "You don't have permission to access this resource")
)

func (e *Failure) Error() string {
	return e.Message
}

// New returns a Failure with an explicit code and kind. Domain packages use it
// for their own sentinels.
func New(code int, kind, msg string) *Failure {
	return &Failure{Code: code, Kind: kind, Message: msg}
}

func fromError(code int, kind string, err error) error {
	if err == nil {
		return nil
	}

	return New(code, kind, err.Error())
}

// BadRequest turns err into a 400. A nil err stays nil.
func BadRequest(err error) error {
	return fromError(http.StatusBadRequest, KindBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, KindBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, KindUnauthorized, msg)
}

// InternalError turns err into a 500. The message is never shown to clients.
func InternalError(err error) error {
	return fromError(http.StatusInternalServerError, KindInternal, err)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, KindNotFound, msg)
}

func Conflict(msg string) error {
	return New(http.StatusConflict, KindConflict, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, KindForbidden, msg)
}

func as(err error) (*Failure, bool) {
	var fail *Failure
	ok := errors.As(err, &fail)

	return fail, ok
}

// GetCode returns the status of a Failure anywhere in err's chain, or 500.
func GetCode(err error) int {
	if fail, ok := as(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of a Failure, or KindInternal for any other error.
func GetKind(err error) string {
	if fail, ok := as(err); ok && fail.Kind != "" {
		return fail.Kind
	}

	return KindInternal
}

// GetMessage returns the Message of a Failure in err's chain without any wrapping
// context, or an empty string when err carries none.
func GetMessage(err error) string {
	if fail, ok := as(err); ok {
		return fail.Message
	}

	return ""
}

// IsFailure reports whether err carries a Failure, i.e. is safe to show to the caller.
func IsFailure(err error) bool {
	_, ok := as(err)

	return ok
}
