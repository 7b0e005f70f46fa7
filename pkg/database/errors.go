package database

import (
	"github.com/lib/pq"
	"github.com/matdash/matdash-backend/pkg/errors"
)

// MapReadError converts a PostgreSQL read failure to a data access AppError
// with a message that names what went wrong. The driver text is kept so the
// dashboard error page can show it verbatim.
func MapReadError(operation string, err error) *errors.AppError {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return errors.DataAccess(operation, err)
	}

	switch pqErr.Code {
	// undefined_table (42P01)
	case "42P01":
		return errors.DataAccess(operation, pqErr).WithDetails(map[string]string{
			"cause": "source table does not exist",
		})

	// undefined_column (42703)
	case "42703":
		return errors.DataAccess(operation, pqErr).WithDetails(map[string]string{
			"cause": "expected column is missing from the source table",
		})

	// insufficient_privilege (42501)
	case "42501":
		return errors.DataAccess(operation, pqErr).WithDetails(map[string]string{
			"cause": "no read permission on the source table",
		})

	default:
		return errors.DataAccess(operation, pqErr)
	}
}
