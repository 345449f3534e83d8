package additionalinfoerrors

import (
	"net/http"

	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/apperror"
)

var (
	ErrAdditionalInformationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Additional information not found",
		http.StatusNotFound,
	)
	ErrInvalidAdditionalInformationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid additional information ID",
		http.StatusBadRequest,
	)
)
