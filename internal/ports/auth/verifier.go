package auth

import "context"

// Claims es lo que un token válido dice del usuario.
type Claims struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
}

// Verifier valida un token y devuelve claims o error.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
