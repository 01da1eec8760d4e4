package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"ruff-service/internal/domain/users"
	"ruff-service/internal/ports/storage"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTakenLocked(u.Email, "") {
		return fmt.Errorf("%w: users_email_key", storage.ErrUniqueViolation)
	}
	r.s.users[u.ID] = u
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]users.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].FirstName) < strings.ToLower(out[j].FirstName)
	})
	return out, nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[u.ID]; !ok {
		return ErrNotFound
	}
	if r.emailTakenLocked(u.Email, u.ID) {
		return fmt.Errorf("%w: users_email_key", storage.ErrUniqueViolation)
	}
	r.s.users[u.ID] = u
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return ErrNotFound
	}

	// Cascada: homes que posee (con sus mascotas/logs) y sus membresías.
	for homeID, h := range r.s.homes {
		if h.OwnerID == id {
			r.s.deleteHomeLocked(homeID)
		}
	}
	for key, m := range r.s.memberships {
		if m.UserID == id {
			delete(r.s.memberships, key)
		}
	}
	delete(r.s.users, id)
	return nil
}

func (r *userRepo) emailTakenLocked(email, exceptID string) bool {
	for _, u := range r.s.users {
		if u.Email == email && u.ID != exceptID {
			return true
		}
	}
	return false
}
