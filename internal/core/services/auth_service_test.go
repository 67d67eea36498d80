package services

import (
	"context"
	"testing"
	"time"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("Success: Should register a profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		service := NewAuthService(mockRepo, nil)
		ctx := context.Background()

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil)

		profile, err := service.Register(ctx, RegisterInput{Name: " Ada ", Passcode: "1234"})

		require.NoError(t, err)
		assert.Equal(t, "Ada", profile.Name)
		assert.NotEmpty(t, profile.ID)
		assert.NotEmpty(t, profile.PasscodeHash)
		assert.NotEqual(t, "1234", profile.PasscodeHash)

		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail: Should reject an empty name", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		service := NewAuthService(mockRepo, nil)

		_, err := service.Register(context.Background(), RegisterInput{Name: "  ", Passcode: "1234"})

		assert.ErrorIs(t, err, domain.ErrInvalidName)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should reject a short passcode", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		service := NewAuthService(mockRepo, nil)

		_, err := service.Register(context.Background(), RegisterInput{Name: "Ada", Passcode: "12"})

		assert.ErrorIs(t, err, domain.ErrPasscodeTooShort)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should refuse a second profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepository)
		service := NewAuthService(mockRepo, nil)

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrProfileExists)

		_, err := service.Register(context.Background(), RegisterInput{Name: "Ada", Passcode: "1234"})
		assert.ErrorIs(t, err, domain.ErrProfileExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	profile, err := domain.NewProfile("profile-1", "Ada")
	require.NoError(t, err)
	require.NoError(t, profile.SetPasscode("1234"))

	setup := func() (*AuthService, *TokenService, *MockProfileRepository) {
		mockRepo := new(MockProfileRepository)
		tokens := NewTokenService("secret", "hydrate-test", time.Hour, mockRepo)
		return NewAuthService(mockRepo, tokens), tokens, mockRepo
	}

	t.Run("Success: Should issue a token for valid credentials", func(t *testing.T) {
		service, tokens, mockRepo := setup()
		mockRepo.On("Get", mock.Anything).Return(profile, nil)

		token, err := service.Login(context.Background(), LoginInput{Name: "ada", Passcode: "1234"})
		require.NoError(t, err)

		id, err := tokens.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "profile-1", id)
	})

	tests := []struct {
		name  string
		input LoginInput
	}{
		{"Fail: Wrong passcode", LoginInput{Name: "Ada", Passcode: "9999"}},
		{"Fail: Wrong name", LoginInput{Name: "Grace", Passcode: "1234"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, mockRepo := setup()
			mockRepo.On("Get", mock.Anything).Return(profile, nil)

			token, err := service.Login(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
			assert.Empty(t, token)
		})
	}

	t.Run("Fail: No profile registered", func(t *testing.T) {
		service, _, mockRepo := setup()
		mockRepo.On("Get", mock.Anything).Return(nil, domain.ErrProfileNotFound)

		_, err := service.Login(context.Background(), LoginInput{Name: "Ada", Passcode: "1234"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
