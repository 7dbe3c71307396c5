package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Plain renders Message as a text/plain body instead of the JSON envelope.
	Plain bool  `json:"-"`
	Err   error `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// PlainBadRequest is a 400 whose body is the bare message.
func PlainBadRequest(message string) *AppError {
	e := New(http.StatusBadRequest, message, nil)
	e.Plain = true
	return e
}

// Unauthenticated is a 401 for a missing or unverifiable token.
func Unauthenticated(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

// Conflict wraps the store error that caused the collision.
func Conflict(message string, err error) *AppError {
	return New(http.StatusConflict, message, err)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil)
}
