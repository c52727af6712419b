// Package validation checks registration form input and reports every violation at once.
package validation

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/MayuriC-eng/CampusConnect/internal/models"
	"github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"name":   "Name must be at least 2 characters",
	"email":  "Please enter a valid email",
	"phone":  "Please enter a valid phone number",
	"year":   "Please select your year",
	"branch": "Please enter your branch",
}

// Errors maps a form field (JSON name) to its message.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + e[f]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Registration returns nil or an Errors value holding every failed field.
func Registration(form models.RegistrationData) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = "is invalid"
		}
		out[fe.Field()] = msg
	}
	return out
}
