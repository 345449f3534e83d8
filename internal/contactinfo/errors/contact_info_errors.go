package contactinfoerrors

import (
	"net/http"

	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/apperror"
)

var (
	ErrContactInformationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Contact information not found",
		http.StatusNotFound,
	)
	ErrInvalidContactInformationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid contact information ID",
		http.StatusBadRequest,
	)
)
