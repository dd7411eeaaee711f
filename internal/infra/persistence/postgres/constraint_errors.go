package postgres

import (
	"strings"

	domainerrors "pushsvc/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// translateWriteError maps constraint violations to request errors and
// everything else to a database execution error.
func translateWriteError(err error, details string) error {
	switch {
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrInvalidRequest.WithDetails(details + ": missing required field")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrInvalidRequest.WithDetails(details + ": value out of range")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func isNotNullConstraintViolation(err error) bool {
	// PostgreSQL not_null_violation is SQLSTATE 23502
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23502") ||
		strings.Contains(errMsg, "violates not-null constraint")
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
