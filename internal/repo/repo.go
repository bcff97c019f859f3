package repo

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// conn picks the open transaction when one is passed down, otherwise the
// shared handle. Repos never open transactions themselves; the composite
// song writer owns the only multi-statement transaction in the system.
func conn(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}

// IsUniqueViolation reports whether err is a unique-constraint violation.
// The service layer pre-checks duplicates, but two racing inserts can both
// pass the pre-check; the constraint is the real backstop and maps to the
// same conflict answer.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite (tests) reports constraint failures as plain strings
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
