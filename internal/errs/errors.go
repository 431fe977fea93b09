package errs

import (
	"errors"
	"fmt"
)

const (
	CodeEmptyInput  = "EMPTY_INPUT"
	CodeNotHydrated = "NOT_HYDRATED"
	CodePersist     = "PERSIST"
)

// AppError is an error with a stable code and a message fit for the user.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// EmptyInput is returned when an item is added with blank text.
func EmptyInput() *AppError {
	return &AppError{
		Code:    CodeEmptyInput,
		Message: "Please enter an item",
	}
}

func NotHydrated() *AppError {
	return &AppError{
		Code:    CodeNotHydrated,
		Message: "wishlist has not been loaded yet",
	}
}

func Persist(err error) *AppError {
	return &AppError{
		Code:    CodePersist,
		Message: "Could not save wishlist",
		Err:     err,
	}
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Message returns the user-facing message of err, or err.Error() for plain errors.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
