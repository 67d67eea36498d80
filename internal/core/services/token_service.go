package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenService struct {
	secretKey     []byte
	issuer        string
	tokenDuration time.Duration
	profiles      domain.ProfileRepository
}

func NewTokenService(secretKey string, issuer string, tokenDuration time.Duration, profiles domain.ProfileRepository) *TokenService {
	return &TokenService{
		secretKey:     []byte(secretKey),
		issuer:        issuer,
		tokenDuration: tokenDuration,
		profiles:      profiles,
	}
}

func (s *TokenService) GenerateToken(profileID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": profileID,
		"jti": uuid.NewString(),
		"exp": now.Add(s.tokenDuration).Unix(),
		"iat": now.Unix(),
		"iss": s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("token service: failed to sign token: %w", err)
	}

	return signedToken, nil
}

func (s *TokenService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return "", fmt.Errorf("%w: invalid token: %v", domain.ErrUnauthorized, err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if iss, ok := claims["iss"].(string); !ok || iss != s.issuer {
			return "", fmt.Errorf("%w: invalid token issuer", domain.ErrUnauthorized)
		}

		profileID, ok := claims["sub"].(string)
		if !ok {
			return "", fmt.Errorf("%w: invalid token subject", domain.ErrUnauthorized)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		profile, err := s.profiles.Get(ctx)
		if errors.Is(err, domain.ErrProfileNotFound) {
			return "", fmt.Errorf("%w: profile no longer exists", domain.ErrUnauthorized)
		}
		if err != nil {
			return "", fmt.Errorf("token service: profile lookup failed: %w", err)
		}
		if profile.ID != profileID {
			return "", fmt.Errorf("%w: token subject does not match the registered profile", domain.ErrUnauthorized)
		}

		return profileID, nil
	}

	return "", fmt.Errorf("%w: invalid token claims", domain.ErrUnauthorized)
}
