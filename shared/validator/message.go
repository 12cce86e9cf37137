package validator

import (
	"errors"
	"fmt"

	val "github.com/go-playground/validator/v10"
)

type formatter func(field, param string) string

func bound(verb string) formatter {
	return func(field, param string) string {
		return fmt.Sprintf("%s must be %s %s", field, verb, param)
	}
}

func pattern(format string) formatter {
	return func(field, param string) string {
		return fmt.Sprintf(format, field, param)
	}
}

func fixed(text string) formatter {
	return func(field, _ string) string {
		return field + " " + text
	}
}

var formatters = map[string]formatter{
	"required":    fixed("is required"),
	"email":       fixed("must be a valid email address"),
	"uuid4":       fixed("must be a valid id"),
	"day":         fixed("must be a date in YYYY-MM-DD format"),
	"gt":          bound("greater than"),
	"gte":         bound("greater than or equal to"),
	"min":         bound("greater than or equal to"),
	"lt":          bound("less than"),
	"lte":         bound("less than or equal to"),
	"max":         bound("less than or equal to"),
	"oneof":       bound("one of"),
	"mimetypes":   bound("one of"),
	"datetime":    pattern("%s must be a timestamp in %s format"),
	"maxfilesize": pattern("%s must not exceed %s MB"),
}

// message reports the first field error in a client-facing form.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		if format, ok := formatters[fieldErr.Tag()]; ok {
			return format(fieldErr.Field(), fieldErr.Param())
		}
	}

	return fieldErrors.Error()
}
