package memory

import (
	"context"
	"fmt"
	"sort"

	"ruff-service/internal/domain/homes"
	"ruff-service/internal/domain/pets"
	"ruff-service/internal/ports/storage"
)

type homeRepo struct {
	s *Store
}

func (r *homeRepo) Create(ctx context.Context, h homes.Home, owner homes.Membership) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[h.OwnerID]; !ok {
		return fmt.Errorf("%w: homes_owner_id_fkey", storage.ErrForeignKeyViolation)
	}

	// Home + membresía del owner bajo el mismo lock: todo o nada.
	h.Pets = nil
	r.s.homes[h.ID] = h
	r.s.memberships[membershipKey(owner.UserID, owner.HomeID)] = owner
	return nil
}

func (r *homeRepo) FindByID(ctx context.Context, id string) (*homes.Home, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	h, ok := r.s.homes[id]
	if !ok {
		return nil, nil
	}
	h.Pets = r.petsOfHomeLocked(id)
	return &h, nil
}

func (r *homeRepo) List(ctx context.Context, memberUserID string) ([]homes.Home, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var visible map[string]struct{}
	if memberUserID != "" {
		visible = r.s.memberHomeIDs(memberUserID)
	}

	out := make([]homes.Home, 0)
	for id, h := range r.s.homes {
		if visible != nil {
			if _, ok := visible[id]; !ok {
				continue
			}
		}
		h.Pets = r.petsOfHomeLocked(id)
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *homeRepo) Update(ctx context.Context, h homes.Home) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.homes[h.ID]; !ok {
		return ErrNotFound
	}
	if _, ok := r.s.users[h.OwnerID]; !ok {
		return fmt.Errorf("%w: homes_owner_id_fkey", storage.ErrForeignKeyViolation)
	}
	h.Pets = nil
	r.s.homes[h.ID] = h
	return nil
}

func (r *homeRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.homes[id]; !ok {
		return ErrNotFound
	}
	r.s.deleteHomeLocked(id)
	return nil
}

func (r *homeRepo) AddMember(ctx context.Context, m homes.Membership) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, userOK := r.s.users[m.UserID]
	_, homeOK := r.s.homes[m.HomeID]
	if !userOK || !homeOK {
		return fmt.Errorf("%w: user_homes_fkey", storage.ErrForeignKeyViolation)
	}

	key := membershipKey(m.UserID, m.HomeID)
	if _, exists := r.s.memberships[key]; exists {
		return fmt.Errorf("%w: user_homes_pkey", storage.ErrUniqueViolation)
	}
	r.s.memberships[key] = m
	return nil
}

func (r *homeRepo) ListMembers(ctx context.Context, homeID string) ([]homes.Membership, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]homes.Membership, 0)
	for _, m := range r.s.memberships {
		if m.HomeID == homeID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// petsOfHomeLocked devuelve copias ordenadas por creación.
func (r *homeRepo) petsOfHomeLocked(homeID string) []pets.Pet {
	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		if p.HomeID == homeID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
