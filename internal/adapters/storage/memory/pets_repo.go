package memory

import (
	"context"
	"fmt"
	"sort"

	"ruff-service/internal/domain/pets"
	"ruff-service/internal/ports/storage"
)

type petRepo struct {
	s *Store
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.homes[p.HomeID]; !ok {
		return fmt.Errorf("%w: pets_home_id_fkey", storage.ErrForeignKeyViolation)
	}
	r.s.pets[p.ID] = p
	return nil
}

func (r *petRepo) FindByID(ctx context.Context, id string) (*pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *petRepo) List(ctx context.Context, memberUserID string) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var visible map[string]struct{}
	if memberUserID != "" {
		visible = r.s.memberHomeIDs(memberUserID)
	}

	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		if visible != nil {
			if _, ok := visible[p.HomeID]; !ok {
				continue
			}
		}
		out = append(out, p)
	}
	sortPetsByCreation(out)
	return out, nil
}

func (r *petRepo) ListByHome(ctx context.Context, homeID string) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		if p.HomeID == homeID {
			out = append(out, p)
		}
	}
	sortPetsByCreation(out)
	return out, nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[p.ID]; !ok {
		return ErrNotFound
	}
	if _, ok := r.s.homes[p.HomeID]; !ok {
		return fmt.Errorf("%w: pets_home_id_fkey", storage.ErrForeignKeyViolation)
	}
	r.s.pets[p.ID] = p
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return ErrNotFound
	}
	r.s.deletePetLocked(id)
	return nil
}

func (r *petRepo) CreateLog(ctx context.Context, l pets.PetLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[l.PetID]; !ok {
		return fmt.Errorf("%w: pet_logs_pet_id_fkey", storage.ErrForeignKeyViolation)
	}
	r.s.logs[l.ID] = l
	return nil
}

func (r *petRepo) ListLogsByPet(ctx context.Context, petID string) ([]pets.PetLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.PetLog, 0)
	for _, l := range r.s.logs {
		if l.PetID == petID {
			out = append(out, l)
		}
	}
	// occurred_at desc, como el índice del schema
	sort.Slice(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	return out, nil
}

func (r *petRepo) ListLogsByUser(ctx context.Context, userID string) ([]pets.PetLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var visible map[string]struct{}
	if userID != "" {
		visible = r.s.memberHomeIDs(userID)
	}

	out := make([]pets.PetLog, 0)
	for _, l := range r.s.logs {
		p, ok := r.s.pets[l.PetID]
		if !ok {
			continue
		}
		if visible != nil {
			if _, ok := visible[p.HomeID]; !ok {
				continue
			}
		}
		out = append(out, l)
	}
	return out, nil
}

func sortPetsByCreation(out []pets.Pet) {
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
}
