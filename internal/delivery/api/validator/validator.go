// Package validator adapts go-playground/validator to echo.
package validator

import (
	domainerrors "crossing/internal/domain/errors"
	"crossing/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json or query name.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	return &Validator{validate: v}
}

// Validate checks the struct tags of i and returns a VALIDATION_FAILED error
// naming the first offending field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]

		return domainerrors.NewValidationError(fe.Field(), describe(fe))
	}

	return errors.WithStack(err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + fe.Param()
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "latitude", "longitude", "uuid":
		return "must be a valid " + fe.Tag()
	default:
		return "failed on " + fe.Tag()
	}
}
