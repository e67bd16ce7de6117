package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgUniqueViolation {
		return true
	}

	// Fallback for drivers that flatten the error into text.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, pgUniqueViolation) || strings.Contains(errMsg, "duplicate key")
}

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if pgErrorCode(err) == pgNotNullViolation {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") || strings.Contains(errMsg, pgNotNullViolation)
}
