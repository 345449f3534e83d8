package addresserrors

import (
	"net/http"

	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/apperror"
)

var (
	ErrAddressNotFound = apperror.New(
		apperror.CodeNotFound,
		"Address not found",
		http.StatusNotFound,
	)
	ErrInvalidAddressID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid address ID",
		http.StatusBadRequest,
	)
)
