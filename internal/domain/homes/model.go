package homes

import (
	"time"

	"ruff-service/internal/domain/pets"
)

// Home es el hogar: un owner, varios miembros vía Membership, varias
// mascotas. Pets se completa al leer (el API siempre devuelve el home
// con sus mascotas).
type Home struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	OwnerID   string     `json:"ownerId"`
	Pets      []pets.Pet `json:"pets"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Membership es la fila de unión (user, home), única por par.
// El owner recibe la suya en la misma transacción que crea el home.
type Membership struct {
	UserID    string    `json:"userId"`
	HomeID    string    `json:"homeId"`
	CreatedAt time.Time `json:"createdAt"`
}
