package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "duplicate key value violates unique constraint"):
		return true
	case strings.Contains(msg, "Error 1062"):
		// MySQL
		return true
	case strings.Contains(msg, "UNIQUE constraint failed"):
		// SQLite
		return true
	}
	return false
}

// Classify returns a low-cardinality label for a storage error, used in logs and metrics.
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case IsDuplicateKeyErr(err):
		return "unique_violation"
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "not_found"
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return "foreign_key_violation"
		case "40001":
			return "serialization_failure"
		case "55P03":
			return "lock_timeout"
		}
		return "pg_" + pgErr.Code
	}
	return "unknown"
}
