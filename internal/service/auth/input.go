package auth

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoginInput holds parameters for password login. The email is not
// checked for format: an unknown address must fail like a wrong password.
type LoginInput struct {
	Email    string `validate:"required,max=254"`
	Password string `validate:"required,max=72"`
}

var loginFields = map[string]string{"Email": "email", "Password": "password"}

// Validate reports every missing or oversized field.
func (i LoginInput) Validate() error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &domain.ValidationError{}
	for _, fe := range verrs {
		msg := "required"
		if fe.Tag() == "max" {
			msg = "too long"
		}
		out.Errors = append(out.Errors, domain.FieldError{Field: loginFields[fe.Field()], Message: msg})
	}
	return out
}
