package company

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

const (
	maxNameLength     = 255
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

// RegisterCompanyInput holds the parameters for onboarding a new company.
type RegisterCompanyInput struct {
	CompanyName string
	AdminEmail  string
	AdminName   string
	Password    string
}

func (i *RegisterCompanyInput) normalize() {
	i.CompanyName = domain.NormalizeName(i.CompanyName)
	i.AdminEmail = domain.NormalizeEmail(i.AdminEmail)
	i.AdminName = domain.NormalizeName(i.AdminName)
}

// Validate checks all fields and collects all errors.
func (i RegisterCompanyInput) Validate() error {
	var errs []domain.FieldError
	errs = appendNameErr(errs, "company_name", i.CompanyName)
	errs = appendEmailErr(errs, "admin_email", i.AdminEmail)
	errs = appendNameErr(errs, "admin_name", i.AdminName)
	errs = appendPasswordErr(errs, i.Password)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateUserInput holds the parameters for adding a user to the caller's company.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.UserRole
}

func (i *CreateUserInput) normalize() {
	i.Email = domain.NormalizeEmail(i.Email)
	i.Name = domain.NormalizeName(i.Name)
	if i.Role == "" {
		i.Role = domain.UserRoleMember
	}
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError
	errs = appendEmailErr(errs, "email", i.Email)
	errs = appendNameErr(errs, "name", i.Name)
	errs = appendPasswordErr(errs, i.Password)
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be admin or member"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetUserActiveInput toggles a user's active flag.
type SetUserActiveInput struct {
	UserID uuid.UUID
	Active bool
}

// Validate checks all fields.
func (i SetUserActiveInput) Validate() error {
	if i.UserID == uuid.Nil {
		return domain.NewValidationError("user_id", "required")
	}
	return nil
}

func appendNameErr(errs []domain.FieldError, field, v string) []domain.FieldError {
	switch {
	case v == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(v) > maxNameLength:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func appendEmailErr(errs []domain.FieldError, field, v string) []domain.FieldError {
	switch {
	case v == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case validate.Var(v, "email,max=254") != nil:
		return append(errs, domain.FieldError{Field: field, Message: "invalid email"})
	}
	return errs
}

func appendPasswordErr(errs []domain.FieldError, v string) []domain.FieldError {
	switch {
	case v == "":
		return append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(v) < minPasswordLength:
		return append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	case len(v) > maxPasswordLength:
		return append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}
	return errs
}
