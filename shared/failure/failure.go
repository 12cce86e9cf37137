package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is an error the API reports to the caller with an HTTP status code.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

// Client reports whether the failure is the caller's fault and retrying will not help.
func (e *Failure) Client() bool {
	return e.Code >= http.StatusBadRequest && e.Code < http.StatusInternalServerError
}

func newFailure(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// BadRequest wraps a parse or validation error. A nil error stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

// Conflict is returned when a write would break a stay or status rule, such as an overlapping booking.
func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// Conflictf formats the conflict message.
func Conflictf(format string, args ...any) error {
	return newFailure(http.StatusConflict, fmt.Sprintf(format, args...))
}

// InternalError hides nothing from logs but is reported as a 500. A nil error stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusInternalServerError, err.Error())
}

func Unimplemented(methodName string) error {
	return newFailure(http.StatusNotImplemented, methodName)
}

// ServiceUnavailable is returned when a backing store such as the user database cannot be reached.
func ServiceUnavailable(msg string) error {
	return newFailure(http.StatusServiceUnavailable, msg)
}

// Is reports whether err is a Failure carrying the given code.
func Is(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}

// IsClient reports whether err is a 4xx Failure anywhere in its chain.
func IsClient(err error) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Client()
}

// GetCode returns the status carried by err, 500 for anything that is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
