// Package form validates submitted forms and reports per-field messages.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their form name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

// Errors maps a field name to its message. "__all__" holds non-field errors.
type Errors map[string]string

func (e Errors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

func (e Errors) Valid() bool {
	return len(e) == 0
}

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Validate checks v against its `validate` tags.
func Validate(v interface{}) Errors {
	errs := Errors{}
	if err := validate.Struct(v); err != nil {
		errs.merge(err)
	}
	return errs
}

// FromError turns a binding or validation error into field messages.
func FromError(err error) Errors {
	errs := Errors{}
	errs.merge(err)
	return errs
}

func (e Errors) merge(err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			e.Add(fe.Field(), message(fe))
		}
		return
	}
	e.Add("__all__", err.Error())
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "slug":
		return "Enter a valid slug consisting of letters, numbers, underscores or hyphens."
	case "numeric":
		return "Select a valid choice."
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
	}
}
