package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is an error that knows the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	cause error
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the error the failure was built from, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

func wrap(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Message: err.Error(), cause: err}
}

// BadRequest turns err into a 400. A nil err stays nil.
func BadRequest(err error) error {
	return wrap(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

// BadRequestf formats a 400 message.
func BadRequestf(format string, args ...any) error {
	return BadRequestFromString(fmt.Sprintf(format, args...))
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) error {
	return &Failure{Code: http.StatusForbidden, Message: msg}
}

// NotFound reports a missing entity by name.
func NotFound(entityName string) error {
	return &Failure{Code: http.StatusNotFound, Message: entityName}
}

func Conflict(msg string) error {
	return &Failure{Code: http.StatusConflict, Message: msg}
}

// GetCode returns the status carried by err, defaulting to 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
