package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	// ErrCorruptRecord flags a stored row that no longer passes its own
	// stored-shape schema. The persistence layer wrote it, so the caller
	// gets a 500 rather than a validation response.
	ErrCorruptRecord = New(
		CodeCorruptRecord,
		"A stored record failed schema validation",
		http.StatusInternalServerError,
	)
)
