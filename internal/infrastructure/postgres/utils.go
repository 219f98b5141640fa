package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que los repos traducen a errores de dominio.
const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
	codeForeignKey      = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool { return pgCode(err) == codeUniqueViolation }

// isCheckViolation detecta los CHECK (stock >= 0, demand >= 0).
func isCheckViolation(err error) bool { return pgCode(err) == codeCheckViolation }

// isForeignKeyViolation detecta una bodega inexistente en products.warehouse.
func isForeignKeyViolation(err error) bool { return pgCode(err) == codeForeignKey }
