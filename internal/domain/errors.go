package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Quiz and session specific errors
	ErrQuizNotFound      ErrorCode = "QUIZ_NOT_FOUND"
	ErrSessionNotFound   ErrorCode = "SESSION_NOT_FOUND"
	ErrInvalidTransition ErrorCode = "INVALID_TRANSITION"

	// Stats store errors
	ErrStatsNotFound  ErrorCode = "STATS_NOT_FOUND"
	ErrStatsCorrupted ErrorCode = "STATS_CORRUPTED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(ErrQuizNotFound, fmt.Sprintf("Quiz not found with ID: %s", quizID), nil)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(ErrSessionNotFound, fmt.Sprintf("Session not found with ID: %s", sessionID), nil)
}

// NewInvalidTransitionError signals an operation that is not legal in the
// session's current state (e.g. submitting before selecting an answer).
func NewInvalidTransitionError(message string) *DomainError {
	return NewError(ErrInvalidTransition, message, nil)
}

// NewStatsNotFoundError is returned by stats mutations when no persisted
// record exists yet; reads never fail this way, they fall back to defaults.
func NewStatsNotFoundError() *DomainError {
	return NewError(ErrStatsNotFound, "User stats not found", nil)
}

func NewStatsCorruptedError(err error) *DomainError {
	return NewError(ErrStatsCorrupted, "Stored user stats could not be parsed", err)
}
