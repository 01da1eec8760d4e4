package storage

import "errors"

// Señales tipadas que los adapters devuelven cuando la base rechaza
// una escritura por constraint. Los services las traducen a conflictos
// de dominio sin conocer el driver.
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)
