package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ruff-service/internal/apperr"
	"ruff-service/internal/platform/logger"
	"ruff-service/internal/platform/presence"
	"ruff-service/internal/ports/storage"
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name   string
	Type   string
	Gender string
	DOB    time.Time
	Breed  string
	HomeID string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	now := s.now()
	p := Pet{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Type:      in.Type,
		Gender:    in.Gender,
		DOB:       in.DOB,
		Breed:     in.Breed,
		HomeID:    in.HomeID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return Pet{}, apperr.Conflict("Home id %s does not exist", in.HomeID)
		}
		s.log.Error("failed to create pet", map[string]any{"error": err.Error()})
		return Pet{}, apperr.Internal(err, "Failed to create pet")
	}
	return p, nil
}

func (s *Service) Retrieve(ctx context.Context, id string) (Pet, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("failed to retrieve pet", map[string]any{"id": id, "error": err.Error()})
		return Pet{}, apperr.Internal(err, "Failed to retrieve pet")
	}

	p, err := presence.Required(found, fmt.Sprintf("Pet with id %s does not exist", id))
	if err != nil {
		return Pet{}, apperr.NotFound("%s", err)
	}
	return p, nil
}

// RetrieveAll lista mascotas; con memberUserID filtra a las de los homes
// donde el usuario es owner o miembro.
func (s *Service) RetrieveAll(ctx context.Context, memberUserID string) ([]Pet, error) {
	out, err := s.repo.List(ctx, strings.TrimSpace(memberUserID))
	if err != nil {
		s.log.Error("failed to list pets", map[string]any{"error": err.Error()})
		return nil, apperr.Internal(err, "Failed to list pets")
	}
	return out, nil
}

type UpdateInput struct {
	Name   *string
	Type   *string
	Gender *string
	DOB    *time.Time
	Breed  *string
	HomeID *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	p, err := s.Retrieve(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		p.Type = *in.Type
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.DOB != nil {
		p.DOB = *in.DOB
	}
	if in.Breed != nil {
		p.Breed = *in.Breed
	}
	if in.HomeID != nil {
		p.HomeID = *in.HomeID
	}
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return Pet{}, apperr.Conflict("Home id %s does not exist", p.HomeID)
		}
		s.log.Error("failed to update pet", map[string]any{"id": id, "error": err.Error()})
		return Pet{}, apperr.Internal(err, "Failed to update pet")
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) (Pet, error) {
	p, err := s.Retrieve(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete pet", map[string]any{"id": id, "error": err.Error()})
		return Pet{}, apperr.Internal(err, "Failed to delete pet")
	}
	return p, nil
}

// Lookups estáticos para la UI; no tocan el datastore.

func (s *Service) RetrieveTypes() []string    { return Types() }
func (s *Service) RetrieveGenders() []string  { return Genders() }
func (s *Service) RetrieveLogTypes() []string { return LogTypes() }

func (s *Service) RetrieveBreeds(petType string) []string {
	return Breeds(petType)
}

type CreateLogInput struct {
	Type        string
	Title       string
	Description string
	OccurredAt  time.Time
}

// CreateLog registra un evento para la mascota. Una FK rota acá significa
// que la mascota no existe: eso es 404, no conflicto.
func (s *Service) CreateLog(ctx context.Context, petID string, in CreateLogInput) (PetLog, error) {
	l := PetLog{
		ID:          uuid.NewString(),
		PetID:       petID,
		Type:        in.Type,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		OccurredAt:  in.OccurredAt,
		CreatedAt:   s.now(),
	}

	if err := s.repo.CreateLog(ctx, l); err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return PetLog{}, apperr.NotFound("Pet with id %s does not exist", petID)
		}
		s.log.Error("failed to create pet log", map[string]any{"petId": petID, "error": err.Error()})
		return PetLog{}, apperr.Internal(err, "Failed to create pet log")
	}
	return l, nil
}

func (s *Service) RetrieveLogs(ctx context.Context, petID string) ([]PetLog, error) {
	out, err := s.repo.ListLogsByPet(ctx, petID)
	if err != nil {
		s.log.Error("failed to list pet logs", map[string]any{"petId": petID, "error": err.Error()})
		return nil, apperr.Internal(err, "Failed to list pet logs")
	}
	return out, nil
}

// RetrieveLogsForUser junta los logs de todas las mascotas de todos los
// homes que el usuario posee o integra. Sin orden global entre mascotas.
func (s *Service) RetrieveLogsForUser(ctx context.Context, userID string) ([]PetLog, error) {
	out, err := s.repo.ListLogsByUser(ctx, strings.TrimSpace(userID))
	if err != nil {
		s.log.Error("failed to list user pet logs", map[string]any{"userId": userID, "error": err.Error()})
		return nil, apperr.Internal(err, "Failed to list pet logs")
	}
	return out, nil
}
