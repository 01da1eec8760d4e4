package homes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ruff-service/internal/apperr"
	"ruff-service/internal/domain/pets"
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
	Name    string
	OwnerID string
}

// Create escribe el home junto con la membresía del owner (todo o nada).
// Una FK rota significa que el owner no existe.
func (s *Service) Create(ctx context.Context, in CreateInput) (Home, error) {
	now := s.now()
	h := Home{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		OwnerID:   in.OwnerID,
		Pets:      []pets.Pet{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	owner := Membership{
		UserID:    in.OwnerID,
		HomeID:    h.ID,
		CreatedAt: now,
	}

	if err := s.repo.Create(ctx, h, owner); err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return Home{}, apperr.Conflict("Owner id %s does not exist", in.OwnerID)
		}
		s.log.Error("failed to create home", map[string]any{"error": err.Error()})
		return Home{}, apperr.Internal(err, "Failed to create home")
	}
	return h, nil
}

func (s *Service) Retrieve(ctx context.Context, id string) (Home, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("failed to retrieve home", map[string]any{"id": id, "error": err.Error()})
		return Home{}, apperr.Internal(err, "Failed to retrieve home")
	}

	h, err := presence.Required(found, fmt.Sprintf("Home with id %s does not exist", id))
	if err != nil {
		return Home{}, apperr.NotFound("%s", err)
	}
	return h, nil
}

// RetrieveAll lista homes; con memberUserID filtra a la unión de
// "es owner" y "tiene membresía" (la propiedad cuenta como membresía).
func (s *Service) RetrieveAll(ctx context.Context, memberUserID string) ([]Home, error) {
	out, err := s.repo.List(ctx, strings.TrimSpace(memberUserID))
	if err != nil {
		s.log.Error("failed to list homes", map[string]any{"error": err.Error()})
		return nil, apperr.Internal(err, "Failed to list homes")
	}
	return out, nil
}

type UpdateInput struct {
	Name    *string
	OwnerID *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Home, error) {
	h, err := s.Retrieve(ctx, id)
	if err != nil {
		return Home{}, err
	}

	if in.Name != nil {
		h.Name = strings.TrimSpace(*in.Name)
	}
	if in.OwnerID != nil {
		h.OwnerID = *in.OwnerID
	}
	h.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, h); err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return Home{}, apperr.Conflict("Owner id %s does not exist", h.OwnerID)
		}
		s.log.Error("failed to update home", map[string]any{"id": id, "error": err.Error()})
		return Home{}, apperr.Internal(err, "Failed to update home")
	}
	return h, nil
}

// Delete borra y devuelve el home; las mascotas caen por cascada del schema.
func (s *Service) Delete(ctx context.Context, id string) (Home, error) {
	h, err := s.Retrieve(ctx, id)
	if err != nil {
		return Home{}, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete home", map[string]any{"id": id, "error": err.Error()})
		return Home{}, apperr.Internal(err, "Failed to delete home")
	}
	return h, nil
}

// AddMember agrega la fila (user, home). Tres salidas sobre el mismo
// espacio de constraints: ok, par duplicado, o referencia inexistente.
func (s *Service) AddMember(ctx context.Context, homeID, userID string) error {
	m := Membership{
		UserID:    userID,
		HomeID:    homeID,
		CreatedAt: s.now(),
	}

	if err := s.repo.AddMember(ctx, m); err != nil {
		if errors.Is(err, storage.ErrUniqueViolation) {
			return apperr.Conflict("User %s is already a member of home %s", userID, homeID)
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return apperr.Conflict("User %s or home %s does not exist", userID, homeID)
		}
		s.log.Error("failed to add user to home", map[string]any{"homeId": homeID, "userId": userID, "error": err.Error()})
		return apperr.Internal(err, "Failed to add user to home")
	}
	return nil
}

// RetrieveMembers expone las filas de membresía de un home.
func (s *Service) RetrieveMembers(ctx context.Context, homeID string) ([]Membership, error) {
	if _, err := s.Retrieve(ctx, homeID); err != nil {
		return nil, err
	}

	out, err := s.repo.ListMembers(ctx, homeID)
	if err != nil {
		s.log.Error("failed to list home members", map[string]any{"homeId": homeID, "error": err.Error()})
		return nil, apperr.Internal(err, "Failed to list home members")
	}
	return out, nil
}
