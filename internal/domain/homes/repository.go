package homes

import "context"

// Repository persiste homes y membresías.
// Create escribe el home y la membresía del owner como una sola unidad:
// si la segunda falla, el home no queda visible.
// FindByID devuelve (nil, nil) cuando no hay fila.
// List con memberUserID vacío devuelve todo; con valor, la unión de
// homes que el usuario posee y homes donde tiene fila de membresía.
type Repository interface {
	Create(ctx context.Context, h Home, owner Membership) error
	FindByID(ctx context.Context, id string) (*Home, error)
	List(ctx context.Context, memberUserID string) ([]Home, error)
	Update(ctx context.Context, h Home) error
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, m Membership) error
	ListMembers(ctx context.Context, homeID string) ([]Membership, error)
}
