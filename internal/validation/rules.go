package validation

import (
	"fmt"
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Func checks one raw field value and, on success, returns the normalized
// value downstream consumers should see (e.g. a parsed time.Time for a
// date-formatted string). On failure it returns a field-scoped error.
type Func func(field string, value any) (any, *FieldError)

// Allowed literal sets for the constrained enums.
var (
	GenderValues        = []string{"Male", "Female", "Other"}
	MaritalStatusValues = []string{"Single", "Married", "Divorced", "Widowed", "Separated"}
)

// validate is shared by the email rule. validator.Validate is safe for
// concurrent use, so a package singleton is fine.
var validate = playground.New(playground.WithRequiredStructEnabled())

// String accepts any string, including legacy sentinel values such as "n/a".
func String(field string, value any) (any, *FieldError) {
	s, ok := value.(string)
	if !ok {
		return nil, &FieldError{
			FieldPath: field,
			Kind:      InvalidFormat,
			Message:   "must be a string",
		}
	}
	return s, nil
}

// Bool accepts a native boolean.
func Bool(field string, value any) (any, *FieldError) {
	b, ok := value.(bool)
	if !ok {
		return nil, &FieldError{
			FieldPath: field,
			Kind:      InvalidFormat,
			Message:   "must be a boolean",
		}
	}
	return b, nil
}

// UUID accepts a string in canonical UUID textual form and normalizes it to
// a uuid.UUID.
func UUID(field string, value any) (any, *FieldError) {
	s, ok := value.(string)
	if !ok {
		return nil, &FieldError{
			FieldPath: field,
			Kind:      InvalidFormat,
			Message:   "must be a UUID string",
		}
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, &FieldError{
			FieldPath: field,
			Kind:      InvalidFormat,
			Message:   "must be a valid UUID",
		}
	}
	return id, nil
}

// Email accepts a syntactically valid email address string.
func Email(field string, value any) (any, *FieldError) {
	s, ok := value.(string)
	if !ok {
		return nil, &FieldError{
			FieldPath: field,
			Kind:      InvalidEmailFormat,
			Message:   "must be an email address string",
		}
	}
	if err := validate.Var(s, "email"); err != nil {
		return nil, &FieldError{
			FieldPath: field,
			Kind:      InvalidEmailFormat,
			Message:   "must be a valid email address",
		}
	}
	return s, nil
}

// Date coerces a date-like value into a time.Time. A native time.Time
// passes through unchanged, which keeps the coercion idempotent. A string
// is parsed as RFC3339 or YYYY-MM-DD. Anything else is rejected, never
// allowed to abort validation of sibling fields.
func Date(field string, value any) (any, *FieldError) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, nil
		}
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return t, nil
		}
		return nil, &FieldError{
			FieldPath: field,
			Kind:      InvalidDate,
			Message:   "must be a valid date in RFC3339 or YYYY-MM-DD format",
		}
	default:
		return nil, &FieldError{
			FieldPath: field,
			Kind:      InvalidDate,
			Message:   "must be a date value or a date-formatted string",
		}
	}
}

// Enum builds a rule accepting only values string-equal to one of the
// allowed literals. The allowed set is reported back on failure.
func Enum(allowed ...string) Func {
	return func(field string, value any) (any, *FieldError) {
		s, ok := value.(string)
		if ok {
			for _, a := range allowed {
				if s == a {
					return s, nil
				}
			}
		}
		return nil, &FieldError{
			FieldPath: field,
			Kind:      InvalidEnumValue,
			Message:   fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		}
	}
}
