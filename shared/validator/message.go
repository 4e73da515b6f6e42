package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var templates = map[string]string{
	"required":         "{field} is required",
	"required_without": "{field} is required when {param} is empty",
	"gte":              "{field} must be greater than or equal to {param}",
	"lte":              "{field} must be less than or equal to {param}",
	"min":              "{field} must be greater than or equal to {param}",
	"max":              "{field} must be less than or equal to {param}",
	"oneof":            "{field} must be one of {param}",
	"email":            "{field} must be a valid email address",
	"uuid":             "{field} must be a valid UUID",
	"url":              "{field} must be a valid URL",
	"datetime":         "{field} must match the format {param}",
	"gtfield":          "{field} must be after {param}",
	"slug":             "{field} must be lowercase words separated by hyphens",
	"itemtype":         "{field} must be existing or new",
	"mimetypes":        "{field} must be one of {param}",
	"maxfilesize":      "{field} must not be larger than {param} MB",
}

// message renders the first validation error that has a template. Tags
// without one fall back to the library's own text.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		if tmpl, ok := templates[fieldErr.Tag()]; ok {
			return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(tmpl)
		}
	}

	return fieldErrors.Error()
}
