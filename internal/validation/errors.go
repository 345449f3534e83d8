package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the class of a field-level validation failure.
type Kind string

const (
	MissingRequiredField Kind = "MissingRequiredField"
	NullNotAllowed       Kind = "NullNotAllowed"
	InvalidFormat        Kind = "InvalidFormat"
	InvalidDate          Kind = "InvalidDate"
	InvalidEnumValue     Kind = "InvalidEnumValue"
	InvalidEmailFormat   Kind = "InvalidEmailFormat"
)

// FieldError is a single violation scoped to one field of a record.
type FieldError struct {
	FieldPath string `json:"fieldPath"`
	Kind      Kind   `json:"errorKind"`
	Message   string `json:"message"`
}

// Errors is the ordered list of every violation found in one validation
// pass. Validation never stops at the first bad field.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.FieldPath, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any violation was recorded for the given field.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.FieldPath == field {
			return true
		}
	}
	return false
}

// Fields returns the distinct field paths with violations, in first-seen order.
func (e Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool, len(e))
	for _, fe := range e {
		if !seen[fe.FieldPath] {
			fields = append(fields, fe.FieldPath)
			seen[fe.FieldPath] = true
		}
	}
	return fields
}

// AsErrors unwraps err into an Errors list, or nil when err is not one.
func AsErrors(err error) Errors {
	if err == nil {
		return nil
	}
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

// IsValidation reports whether err carries field-level violations.
func IsValidation(err error) bool {
	return AsErrors(err) != nil
}
