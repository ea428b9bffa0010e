package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation  = "23505"
	codeInvalidTextValue = "22P02"
)

// isNotFound reports a missing row, including ids that are not valid uuids.
func isNotFound(err error) bool {
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeInvalidTextValue
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation
}
