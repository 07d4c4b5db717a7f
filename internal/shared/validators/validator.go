package validators

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance.
func New() *Validate {
	return validator.New()
}

// Describe flattens a validation error into readable "field (rule)" items.
// Field paths drop the root struct name and are lowercased, e.g. "Config.Report.Top"
// becomes "report.top". Errors that are not ValidationErrors are returned as-is.
func Describe(err error) []string {
	ve, ok := err.(ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(ve))
	for _, e := range ve {
		out = append(out, FormatFieldError(e))
	}
	return out
}

// FormatFieldError formats a single validation error into a readable string.
func FormatFieldError(e FieldError) string {
	field := e.Field()

	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag := e.Tag(); tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "gt", "gte", "lt", "lte", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
