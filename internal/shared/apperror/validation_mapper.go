package apperror

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/SamiulIslamRamim/erp-backend-personal/internal/validation"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns a camelCase field path into a readable label
// (officeEmail -> Office Email) for the top-level message.
func formatFieldName(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	caser := cases.Title(language.English)
	return caser.String(b.String())
}

// FromValidation converts a field-level violation list into the AppError
// the API boundary returns. The full ordered list rides along in Details so
// a form can show every error at once; the message summarizes the first.
func FromValidation(verrs validation.Errors) *AppError {
	if len(verrs) == 0 {
		return ErrInvalidInput
	}

	first := verrs[0]
	message := fmt.Sprintf("%s %s", formatFieldName(first.FieldPath), first.Message)
	if len(verrs) > 1 {
		message = fmt.Sprintf("%s (and %d more violations)", message, len(verrs)-1)
	}

	return &AppError{
		Code:       CodeValidationFailed,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Details:    verrs,
	}
}

// MapValidationError resolves any error coming out of a validate call:
// violation lists become a structured 400, everything else a generic 400.
func MapValidationError(err error) error {
	if verrs := validation.AsErrors(err); verrs != nil {
		return FromValidation(verrs)
	}
	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
