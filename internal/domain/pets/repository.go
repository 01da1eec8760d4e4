package pets

import "context"

// Repository persiste mascotas y sus logs.
// FindByID devuelve (nil, nil) cuando no hay fila.
// List con memberUserID vacío devuelve todo; con valor, las mascotas de
// los homes que el usuario posee o integra.
type Repository interface {
	Create(ctx context.Context, p Pet) error
	FindByID(ctx context.Context, id string) (*Pet, error)
	List(ctx context.Context, memberUserID string) ([]Pet, error)
	ListByHome(ctx context.Context, homeID string) ([]Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error

	CreateLog(ctx context.Context, l PetLog) error
	ListLogsByPet(ctx context.Context, petID string) ([]PetLog, error) // occurred_at desc
	ListLogsByUser(ctx context.Context, userID string) ([]PetLog, error)
}
