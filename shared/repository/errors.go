package repository

import (
	"errors"
	"resort/shared/constant"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err was raised by the named unique constraint.
// An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	if string(pqErr.Code) != constant.PqErrorCodeUniqueViolation {
		return false
	}

	return constraint == "" || pqErr.Constraint == constraint
}
