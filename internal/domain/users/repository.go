package users

import "context"

// Repository es el gateway de persistencia de usuarios.
// FindByID/FindByEmail devuelven (nil, nil) cuando no hay fila;
// el service decide qué significa esa ausencia.
type Repository interface {
	Create(ctx context.Context, u User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error) // lower(first_name) asc
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
}
