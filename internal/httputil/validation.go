package httputil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMessage returns a human readable message for a binding
// validation error.
func ValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "email":
		return fmt.Sprintf("%s must be an email address", e.Field())
	case "len":
		return fmt.Sprintf("%s must be %s characters long", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), strings.ReplaceAll(e.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

// ValidationError joins the messages of validator errors into a single error.
// Other errors are returned unchanged.
func ValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, ValidationMessage(e))
	}

	return errors.New(strings.Join(messages, ", "))
}
