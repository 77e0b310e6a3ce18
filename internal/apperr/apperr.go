package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound    = "not_found"
	CodeDuplicate   = "duplicate"
	CodeConflict    = "conflict"
	CodeInvalid     = "invalid"
	CodeTransaction = "transaction_failed"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NotFound(format string, args ...interface{}) *Error {
	return New(http.StatusNotFound, CodeNotFound, fmt.Errorf(format, args...))
}

func Duplicate(format string, args ...interface{}) *Error {
	return New(http.StatusConflict, CodeDuplicate, fmt.Errorf(format, args...))
}

func Conflict(format string, args ...interface{}) *Error {
	return New(http.StatusConflict, CodeConflict, fmt.Errorf(format, args...))
}

func Invalid(format string, args ...interface{}) *Error {
	return New(http.StatusUnprocessableEntity, CodeInvalid, fmt.Errorf(format, args...))
}

func Transaction(err error) *Error {
	return New(http.StatusInternalServerError, CodeTransaction, err)
}

// IsCode reports whether err is (or wraps) an *Error carrying the given code.
func IsCode(err error, code string) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
