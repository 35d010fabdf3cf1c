package room

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

const maxNameLength = 100

// CreateRoomInput holds the parameters for creating a room.
type CreateRoomInput struct {
	Name string
}

// Validate checks all fields.
func (i CreateRoomInput) Validate() error {
	if err := validateName(domain.NormalizeName(i.Name)); err != nil {
		return domain.NewValidationErrors([]domain.FieldError{*err})
	}
	return nil
}

// UpdateRoomInput holds a partial room update. nil = keep.
type UpdateRoomInput struct {
	RoomID uuid.UUID
	Name   *string
	Active *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateRoomInput) Validate() error {
	var errs []domain.FieldError

	if i.RoomID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "room_id", Message: "required"})
	}
	if i.Name != nil {
		if fe := validateName(domain.NormalizeName(*i.Name)); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if i.Name == nil && i.Active == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(name string) *domain.FieldError {
	if name == "" {
		return &domain.FieldError{Field: "name", Message: "required"}
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return &domain.FieldError{Field: "name", Message: "max 100 characters"}
	}
	return nil
}
