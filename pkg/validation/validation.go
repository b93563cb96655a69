package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

func FormatValidationError(err error) []string {
	var errs []string

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			tag := e.Tag()

			switch tag {
			case "required":
				errs = append(errs, fmt.Sprintf("%s is required", field))
			case "min":
				errs = append(errs, fmt.Sprintf("%s must have minimum length %s", field, e.Param()))
			case "max":
				errs = append(errs, fmt.Sprintf("%s must have maximum length %s", field, e.Param()))
			case "oneof":
				errs = append(errs, fmt.Sprintf("%s must be one of [%s]", field, e.Param()))
			default:
				errs = append(errs, fmt.Sprintf("%s is invalid (%s)", field, tag))
			}
		}
	}
	return errs
}

// FirstFailedField returns the struct field name of the first failing rule.
// validator reports failures in struct declaration order, so the field order
// of the validated struct defines check precedence.
func FirstFailedField(err error) (string, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "", false
	}
	return validationErrors[0].StructField(), true
}
