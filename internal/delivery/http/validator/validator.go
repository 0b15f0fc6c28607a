// Package validator adapts go-playground/validator to echo's Validator
// interface, reporting every violated field at once under its JSON name.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	domainerrors "crm/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server. Field names in error
// output come from the json struct tags.
func New() *CustomValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator. A schema violation comes back as a
// domain ValidationError carrying one message per violated field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "input validation failed")
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = messageFor(fe)
	}

	return domainerrors.NewValidationError(fields)
}

// messageFor renders a human-readable message for one violated field.
func messageFor(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
		}

		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be positive", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// fieldLabel turns a camelCase json name into a display label,
// e.g. "firstName" -> "First Name".
func fieldLabel(name string) string {
	var label strings.Builder
	for i, r := range name {
		if i == 0 {
			label.WriteRune(unicode.ToUpper(r))

			continue
		}
		if unicode.IsUpper(r) {
			label.WriteRune(' ')
		}
		label.WriteRune(r)
	}

	return label.String()
}
