package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/google/uuid"
)

type TokenIssuer interface {
	GenerateToken(profileID string) (string, error)
}

type AuthService struct {
	repo   domain.ProfileRepository
	tokens TokenIssuer
}

func NewAuthService(repo domain.ProfileRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
	}
}

type RegisterInput struct {
	Name     string
	Passcode string
}

type LoginInput struct {
	Name     string
	Passcode string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.Profile, error) {
	profile, err := domain.NewProfile(uuid.NewString(), input.Name)
	if err != nil {
		return nil, err
	}

	if err := profile.SetPasscode(input.Passcode); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrProfileExists) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to create profile: %w", err)
	}

	return profile, nil
}

// Login checks the credentials and returns a signed token. Unknown names and
// wrong passcodes yield the same error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, error) {
	profile, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to load profile: %w", err)
	}

	if !profile.Matches(input.Name) {
		return "", domain.ErrInvalidCredentials
	}
	if err := profile.CheckPasscode(input.Passcode); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.GenerateToken(profile.ID)
}
