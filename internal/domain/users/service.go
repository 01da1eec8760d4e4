package users

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
	Email     string
	FirstName string
	LastName  string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	now := s.now()
	u := User{
		ID:        uuid.NewString(),
		Email:     strings.TrimSpace(in.Email),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, storage.ErrUniqueViolation) {
			return User{}, apperr.Conflict("Email %s is already in use", u.Email)
		}
		s.log.Error("failed to create user", map[string]any{"error": err.Error()})
		return User{}, apperr.Internal(err, "Failed to create user")
	}
	return u, nil
}

func (s *Service) Retrieve(ctx context.Context, id string) (User, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("failed to retrieve user", map[string]any{"id": id, "error": err.Error()})
		return User{}, apperr.Internal(err, "Failed to retrieve user")
	}

	u, err := presence.Required(found, fmt.Sprintf("User with id %s does not exist", id))
	if err != nil {
		return User{}, apperr.NotFound("%s", err)
	}
	return u, nil
}

func (s *Service) RetrieveAll(ctx context.Context) ([]User, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list users", map[string]any{"error": err.Error()})
		return nil, apperr.Internal(err, "Failed to list users")
	}
	return out, nil
}

type UpdateInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (User, error) {
	u, err := s.Retrieve(ctx, id)
	if err != nil {
		return User{}, err
	}

	if in.Email != nil {
		u.Email = strings.TrimSpace(*in.Email)
	}
	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, storage.ErrUniqueViolation) {
			return User{}, apperr.Conflict("Email %s is already in use", u.Email)
		}
		s.log.Error("failed to update user", map[string]any{"id": id, "error": err.Error()})
		return User{}, apperr.Internal(err, "Failed to update user")
	}
	return u, nil
}

// Delete borra y devuelve el usuario borrado. Los homes que el usuario
// posee caen en cascada (política del schema).
func (s *Service) Delete(ctx context.Context, id string) (User, error) {
	u, err := s.Retrieve(ctx, id)
	if err != nil {
		return User{}, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete user", map[string]any{"id": id, "error": err.Error()})
		return User{}, apperr.Internal(err, "Failed to delete user")
	}
	return u, nil
}
