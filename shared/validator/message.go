package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var templates = map[string]string{
	"required":      "{field} is required",
	"required_if":   "{field} is required",
	"email":         "{field} must be a valid email address",
	"rfc3339":       "{field} must be an RFC3339 timestamp",
	"oneof":         "{field} must be one of {param}",
	"billingtarget": "{field} must be one of personal organization external",
	"gte":           "{field} must be greater than or equal to {param}",
	"min":           "{field} must be greater than or equal to {param}",
	"lte":           "{field} must be less than or equal to {param}",
	"max":           "{field} must be less than or equal to {param}",
}

// message renders the first field error that has a template, so clients get one
// readable sentence instead of the validator's multi-line dump.
func message(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	for _, fe := range fieldErrs {
		tmpl, ok := templates[fe.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", fe.Field(), "{param}", fe.Param()).Replace(tmpl)
	}

	return fieldErrs.Error()
}
