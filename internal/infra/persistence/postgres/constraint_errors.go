package postgres

import (
	"strings"

	domainerrors "houses/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// translateWriteError maps an insert failure onto a domain error. Constraint
// violations are the caller's fault; everything else is an upstream failure.
func translateWriteError(err error, details string) error {
	switch {
	case isCheckConstraintViolation(err):
		return domainerrors.NewValidationError(checkConstraintField(err), "violates store constraint")
	case isNotNullConstraintViolation(err):
		return domainerrors.NewValidationError("input", "missing required field")
	default:
		return domainerrors.NewUpstreamError(err, details)
	}
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint") || strings.Contains(errMsg, "23514")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not-null") ||
		strings.Contains(errMsg, "23502")
}

// checkConstraintField names the column guarded by one of the houses check constraints.
func checkConstraintField(err error) string {
	errMsg := err.Error()
	switch {
	case strings.Contains(errMsg, "chk_houses_latitude"):
		return "coordinates.latitude"
	case strings.Contains(errMsg, "chk_houses_longitude"):
		return "coordinates.longitude"
	case strings.Contains(errMsg, "chk_houses_bedrooms"):
		return "bedrooms"
	default:
		return "input"
	}
}
