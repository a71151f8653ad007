package authenticating

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/marketpulse/marketpulse-api/infrastructure/repository"
	"github.com/marketpulse/marketpulse-api/infrastructure/repository/mocks"
	"github.com/marketpulse/marketpulse-api/internal/config"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/marketpulse/marketpulse-api/pkg/apiErrors"
)

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.TokenTTLMinutes = 60
	return cfg
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func authCode(t *testing.T, err error) string {
	t.Helper()
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	return authErr.Code
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *domain.User) error {
			user.ID = "user-1"
			return nil
		})

	service := NewService(userRepo, testAuthConfig())

	user, err := service.Register("Ava", "  Ava@Example.COM ", "long-enough-password")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "ava@example.com", user.Email)
	assert.True(t, user.Active)
	// The stored hash verifies against the original password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("long-enough-password")))
}

func TestRegisterWeakPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testAuthConfig())

	_, err := service.Register("Ava", "ava@example.com", "short")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWeakPassword))
	assert.Equal(t, apiErrors.ErrInvalidFormat, authCode(t, err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		Create(gomock.Any()).
		Return(repository.ErrDuplicateEmail)

	service := NewService(userRepo, testAuthConfig())

	_, err := service.Register("Ava", "ava@example.com", "long-enough-password")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserAlreadyExists))
	assert.Equal(t, apiErrors.ErrUserAlreadyExists, authCode(t, err))
}

func TestLoginWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		GetByEmail("ava@example.com").
		Return(&domain.User{
			ID:           "user-1",
			Email:        "ava@example.com",
			PasswordHash: mustHash(t, "correct-password"),
			Active:       true,
		}, nil)

	service := NewService(userRepo, testAuthConfig())

	_, _, err := service.Login("ava@example.com", "wrong-password")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestLoginUnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		GetByEmail("nobody@example.com").
		Return(nil, nil)

	service := NewService(userRepo, testAuthConfig())

	_, _, err := service.Login("nobody@example.com", "whatever-pass")

	require.Error(t, err)
	// A missing account is indistinguishable from a wrong password.
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestLoginDisabledUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		GetByEmail("ava@example.com").
		Return(&domain.User{
			ID:           "user-1",
			Email:        "ava@example.com",
			PasswordHash: mustHash(t, "correct-password"),
			Active:       false,
		}, nil)

	service := NewService(userRepo, testAuthConfig())

	_, _, err := service.Login("ava@example.com", "correct-password")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserDisabled))
}

func TestLoginTokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		GetByEmail("ava@example.com").
		Return(&domain.User{
			ID:           "user-1",
			Email:        "ava@example.com",
			PasswordHash: mustHash(t, "correct-password"),
			Active:       true,
		}, nil)

	service := NewService(userRepo, testAuthConfig())

	token, user, err := service.Login("ava@example.com", "correct-password")

	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "user-1", user.ID)

	claims, err := service.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ava@example.com", claims.Email)
}

func TestValidateTokenGarbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testAuthConfig())

	_, err := service.ValidateToken("not-a-jwt")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestValidateTokenExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		GetByEmail("ava@example.com").
		Return(&domain.User{
			ID:           "user-1",
			Email:        "ava@example.com",
			PasswordHash: mustHash(t, "correct-password"),
			Active:       true,
		}, nil)

	cfg := testAuthConfig()
	cfg.Auth.TokenTTLMinutes = -5
	service := NewService(userRepo, cfg)

	token, _, err := service.Login("ava@example.com", "correct-password")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExpiredToken))
}

func TestGetProfileNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetByID("missing").Return(nil, nil)

	service := NewService(userRepo, testAuthConfig())

	_, err := service.GetProfile("missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}
