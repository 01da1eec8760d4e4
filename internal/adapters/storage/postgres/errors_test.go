package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"ruff-service/internal/ports/storage"
)

func TestTranslateConstraint_UniqueViolation(t *testing.T) {
	src := &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "users_email_key"}

	err := translateConstraint(src)
	if !errors.Is(err, storage.ErrUniqueViolation) {
		t.Fatalf("esperaba ErrUniqueViolation, obtuve %v", err)
	}

	// el error del driver sigue en la cadena
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.ConstraintName != "users_email_key" {
		t.Fatalf("se perdio el error original en la cadena: %v", err)
	}
}

func TestTranslateConstraint_ForeignKeyViolation(t *testing.T) {
	src := &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "pets_home_id_fkey"}

	err := translateConstraint(src)
	if !errors.Is(err, storage.ErrForeignKeyViolation) {
		t.Fatalf("esperaba ErrForeignKeyViolation, obtuve %v", err)
	}
}

func TestTranslateConstraint_MalformedIDBehavesLikeBrokenReference(t *testing.T) {
	// un id que no castea a uuid no referencia fila alguna; la escritura
	// debe fallar con la misma señal que una FK rota
	src := &pgconn.PgError{Code: codeInvalidTextRep}

	err := translateConstraint(src)
	if !errors.Is(err, storage.ErrForeignKeyViolation) {
		t.Fatalf("esperaba ErrForeignKeyViolation para 22P02, obtuve %v", err)
	}
}

func TestTranslateConstraint_PassesThroughOtherErrors(t *testing.T) {
	if got := translateConstraint(nil); got != nil {
		t.Fatalf("nil debe seguir siendo nil, obtuve %v", got)
	}

	syntax := &pgconn.PgError{Code: "42601"}
	if got := translateConstraint(syntax); got != error(syntax) {
		t.Fatalf("un codigo no traducido debe pasar intacto, obtuve %v", got)
	}

	plain := errors.New("connection refused")
	if got := translateConstraint(plain); got != plain {
		t.Fatalf("un error ajeno al driver debe pasar intacto, obtuve %v", got)
	}
}

func TestIsInvalidID(t *testing.T) {
	wrapped := fmt.Errorf("scan: %w", &pgconn.PgError{Code: codeInvalidTextRep})
	if !isInvalidID(wrapped) {
		t.Fatal("debe detectar 22P02 aun envuelto")
	}

	if isInvalidID(&pgconn.PgError{Code: codeForeignKeyViolation}) {
		t.Fatal("23503 no es un id malformado")
	}
	if isInvalidID(errors.New("otra cosa")) {
		t.Fatal("un error cualquiera no debe clasificar como id malformado")
	}
}
