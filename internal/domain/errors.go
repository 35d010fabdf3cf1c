package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrValidation       = errors.New("validation error")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrSystemNotAllowed = errors.New("not allowed")
)

// KindError pairs one of the sentinel kinds with a message meant for the caller.
type KindError struct {
	Kind    error
	Message string
}

func (e *KindError) Error() string {
	return e.Message
}

func (e *KindError) Unwrap() error { return e.Kind }

// NewKindError creates a KindError. Kind should be one of the sentinels above.
func NewKindError(kind error, message string) *KindError {
	return &KindError{Kind: kind, Message: message}
}

// Messages returned to API callers.
var (
	ErrParticipantExists = NewKindError(ErrAlreadyExists, "Participant already exists in the meeting")
	ErrScheduleConflict  = NewKindError(ErrAlreadyExists, "There is already a schedule")
	ErrUserNotActive     = NewKindError(ErrSystemNotAllowed, "User not active")
	ErrRoomNotActive     = NewKindError(ErrSystemNotAllowed, "Room not active")
	ErrUserNotAdmin      = NewKindError(ErrNotAuthorized, "User is not admin")
)

// MessageOf returns the caller-facing message of err, or fallback when err
// carries none.
func MessageOf(err error, fallback string) string {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.Message
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return fallback
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
