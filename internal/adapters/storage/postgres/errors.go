package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"ruff-service/internal/ports/storage"
)

var ErrNotFound = errors.New("not found")

// Códigos de Postgres que el adapter traduce.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidTextRep      = "22P02" // el texto no castea a uuid
)

// translateConstraint convierte errores de constraint del driver en las
// señales de ports/storage, conservando el error original en la cadena.
// Un id que ni siquiera es UUID (22P02) no puede referenciar fila alguna:
// misma señal que una FK rota, igual que el adapter in-memory.
func translateConstraint(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s: %w", storage.ErrUniqueViolation, pgErr.ConstraintName, err)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s: %w", storage.ErrForeignKeyViolation, pgErr.ConstraintName, err)
		case codeInvalidTextRep:
			return fmt.Errorf("%w: %s: %w", storage.ErrForeignKeyViolation, pgErr.Code, err)
		}
	}
	return err
}

// isInvalidID detecta el cast fallido a uuid. En lecturas equivale a
// "no hay fila": un id malformado se responde como not found, no como 500.
func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeInvalidTextRep
}
