package memory

import (
	"errors"
	"sync"

	"ruff-service/internal/domain/homes"
	"ruff-service/internal/domain/pets"
	"ruff-service/internal/domain/users"
)

var ErrNotFound = errors.New("not found")

// Store guarda todas las tablas bajo un solo lock para poder simular
// las constraints (unique, FK, cascada) igual que lo haría la base.
// Se usa en dev sin DATABASE_URL y en los tests end-to-end.
type Store struct {
	mu          sync.RWMutex
	users       map[string]users.User
	homes       map[string]homes.Home // sin Pets; se completan al leer
	memberships map[string]homes.Membership
	pets        map[string]pets.Pet
	logs        map[string]pets.PetLog
}

func NewStore() *Store {
	return &Store{
		users:       make(map[string]users.User),
		homes:       make(map[string]homes.Home),
		memberships: make(map[string]homes.Membership),
		pets:        make(map[string]pets.Pet),
		logs:        make(map[string]pets.PetLog),
	}
}

func (s *Store) Users() users.Repository { return &userRepo{s: s} }
func (s *Store) Homes() homes.Repository { return &homeRepo{s: s} }
func (s *Store) Pets() pets.Repository   { return &petRepo{s: s} }

func membershipKey(userID, homeID string) string {
	return userID + "|" + homeID
}

// memberHomeIDs: homes donde el usuario es owner o tiene membresía.
// Requiere lock tomado.
func (s *Store) memberHomeIDs(userID string) map[string]struct{} {
	out := make(map[string]struct{})
	for id, h := range s.homes {
		if h.OwnerID == userID {
			out[id] = struct{}{}
		}
	}
	for _, m := range s.memberships {
		if m.UserID == userID {
			out[m.HomeID] = struct{}{}
		}
	}
	return out
}

// deleteHomeLocked borra el home con sus membresías, mascotas y logs.
func (s *Store) deleteHomeLocked(homeID string) {
	for key, m := range s.memberships {
		if m.HomeID == homeID {
			delete(s.memberships, key)
		}
	}
	for id, p := range s.pets {
		if p.HomeID == homeID {
			s.deletePetLocked(id)
		}
	}
	delete(s.homes, homeID)
}

func (s *Store) deletePetLocked(petID string) {
	for id, l := range s.logs {
		if l.PetID == petID {
			delete(s.logs, id)
		}
	}
	delete(s.pets, petID)
}
