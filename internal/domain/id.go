package domain

import "github.com/google/uuid"

// NewID returns a fresh random identifier.
func NewID() uuid.UUID {
	return uuid.New()
}

// ParseID parses an identifier supplied by a caller. field names the input in
// the returned ValidationError.
func ParseID(field, raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, NewValidationError(field, "required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, NewValidationError(field, "invalid identifier")
	}
	return id, nil
}
