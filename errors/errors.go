package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Op      string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func InvalidInput(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func NotFound(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func Internal(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// Upstream marks failures of an external collaborator (YouTube captions,
// Ollama chat) that are not this service's fault.
func Upstream(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// Unavailable marks failures that block the whole render cycle, such as
// the Ollama model listing being unreachable.
func Unavailable(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusServiceUnavailable,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func is(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func IsInvalidInput(err error) bool {
	return is(err, http.StatusBadRequest)
}

func IsNotFound(err error) bool {
	return is(err, http.StatusNotFound)
}

func IsUpstream(err error) bool {
	return is(err, http.StatusBadGateway)
}

func IsUnavailable(err error) bool {
	return is(err, http.StatusServiceUnavailable)
}
