package auth

import (
	"context"

	"ruff-service/internal/apperr"
	"ruff-service/internal/domain/users"
	"ruff-service/internal/platform/logger"
	"ruff-service/internal/platform/presence"
)

// UserFinder es lo único que auth necesita del repo de usuarios.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*users.User, error)
}

type Service struct {
	users  UserFinder
	tokens *TokenIssuer
	log    logger.Logger
}

func NewService(finder UserFinder, tokens *TokenIssuer, log logger.Logger) *Service {
	return &Service{
		users:  finder,
		tokens: tokens,
		log:    log,
	}
}

type LoginResult struct {
	AccessToken string     `json:"accessToken"`
	User        users.User `json:"user"`
}

// Login busca el usuario por email y firma un token. La ausencia del
// usuario se reporta como credenciales inválidas, sin distinguir causa.
func (s *Service) Login(ctx context.Context, email string) (LoginResult, error) {
	found, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("failed to login user", map[string]any{"error": err.Error()})
		return LoginResult{}, apperr.Internal(err, "Failed to login user")
	}

	u, err := presence.Required(found, "Invalid Credentials")
	if err != nil {
		return LoginResult{}, apperr.Unauthorized(err.Error())
	}

	token, err := s.tokens.Sign(u)
	if err != nil {
		s.log.Error("failed to sign token", map[string]any{"error": err.Error()})
		return LoginResult{}, apperr.Internal(err, "Failed to login user")
	}

	return LoginResult{AccessToken: token, User: u}, nil
}
