package pets

import "time"

// Pet vive dentro de un Home; la integridad de HomeID la garantiza
// la foreign key del datastore.
type Pet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`   // Dog, Cat
	Gender    string    `json:"gender"` // Male, Female
	DOB       time.Time `json:"dob"`
	Breed     string    `json:"breed"` // según Type
	HomeID    string    `json:"homeId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PetLog es un evento con timestamp de una mascota (paseo, comida, etc.).
// Append-only: no se edita ni se borra por API.
type PetLog struct {
	ID          string    `json:"id"`
	PetID       string    `json:"petId"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
	CreatedAt   time.Time `json:"createdAt"`
}
