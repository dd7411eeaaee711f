// Package validator adapts go-playground/validator to the domain error taxonomy.
package validator

import (
	"reflect"
	"strings"

	domainerrors "pushsvc/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates request structs by their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate returns ErrInvalidRequest listing every failing field, or nil.
// It also satisfies echo.Validator.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}

	problems := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		problems = append(problems, describe(fieldErr))
	}

	return domainerrors.ErrInvalidRequest.WithDetails(strings.Join(problems, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := fieldPath(fieldErr.Namespace())

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must contain at least " + fieldErr.Param() + " item(s)"
	case "url":
		return field + " must be a valid URL"
	default:
		return field + " failed " + fieldErr.Tag() + " validation"
	}
}

// fieldPath drops the struct type prefix from a validator namespace.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return namespace
}
