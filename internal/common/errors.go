// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Record store errors.
	ErrConnection = errors.New("connection error")
	ErrSave       = errors.New("save error")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// User-facing messages for record store failures.
const (
	ConnectionErrorMessage = "Connection error"
	SaveErrorMessage       = "Save error"
	AuthErrorMessage       = "Check your API key"
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the text to show for err. Save failures map to the save
// message, UserErrors to their own message and everything else to the
// connection message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}

	if errors.Is(err, ErrSave) {
		return SaveErrorMessage
	}

	return ConnectionErrorMessage
}
