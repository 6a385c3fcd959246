package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports fields by their JSON names
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// EchoValidator adapts a validator.Validate to echo's Validator interface
type EchoValidator struct {
	Validator *validator.Validate
}

// Validate validates a struct using its `validate` tags
func (ev *EchoValidator) Validate(i interface{}) error {
	return ev.Validator.Struct(i)
}

// MissingFields lists the JSON names of fields that failed the required rule
func MissingFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	var fields []string
	for _, fe := range validationErrors {
		if fe.Tag() == "required" {
			fields = append(fields, fe.Field())
		}
	}
	return fields
}
