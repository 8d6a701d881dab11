package handler

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type (
	// FieldError describes one failed validation rule of a request body.
	FieldError struct {
		FailedField string
		Tag         string
		Param       string
		Value       interface{}
	}

	// XValidator validates request bodies.
	XValidator struct{}
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names, the client never sees the go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return v
}

// Validate performs validation on the provided data and returns the failed fields.
func (v XValidator) Validate(data interface{}) []FieldError {
	var fieldErrors []FieldError

	errs := validate.Struct(data)
	if errs != nil {
		for _, err := range errs.(validator.ValidationErrors) { //nolint:errorlint,errcheck // ok here
			fieldErrors = append(fieldErrors, FieldError{
				FailedField: err.Field(),
				Tag:         err.Tag(),
				Param:       err.Param(),
				Value:       err.Value(),
			})
		}
	}

	return fieldErrors
}

// String renders the field error for an error message.
func (e FieldError) String() string {
	switch e.Tag {
	case "required":
		return e.FailedField + " is required"
	case "max":
		return e.FailedField + " must be at most " + e.Param + " characters"
	case "min":
		return e.FailedField + " needs at least " + e.Param + " entries"
	default:
		return e.FailedField + " is invalid"
	}
}
