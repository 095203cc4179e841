package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"ventapos/internal/core/apperror"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MapUniqueViolation converts a PostgreSQL unique violation (23505) into a
// structured duplicate error carrying the conflicting field, derived from the
// constraint name suffix (e.g. "doc_sales_number_key" -> "number").
// Returns nil if err is not a unique violation.
func MapUniqueViolation(err error, entityName string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}

	return apperror.NewDuplicate(entityName, constraintField(pgErr.ConstraintName), "").WithCause(err)
}

// MapForeignKeyViolation converts a PostgreSQL FK violation (23503) into a
// conflict error. Returns nil if err is not a FK violation.
func MapForeignKeyViolation(err error, entityName string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgForeignKeyViolation {
		return nil
	}

	return apperror.NewConflict(entityName + " is referenced by other records").WithCause(err)
}

func constraintField(constraint string) string {
	name := strings.TrimSuffix(constraint, "_key")
	name = strings.TrimSuffix(name, "_idx")
	if i := strings.LastIndex(name, "_"); i >= 0 {
		return name[i+1:]
	}
	return name
}
