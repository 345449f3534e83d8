package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/SamiulIslamRamim/erp-backend-personal/internal/employee/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "office_email") {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}
