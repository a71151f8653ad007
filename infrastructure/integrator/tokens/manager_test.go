package tokens

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	integratormocks "github.com/marketpulse/marketpulse-api/infrastructure/integrator/mocks"
	"github.com/marketpulse/marketpulse-api/infrastructure/repository/mocks"
	"github.com/marketpulse/marketpulse-api/internal/domain"
)

func expiredCredential() *domain.Credential {
	token := "stale"
	refresh := "refresh"
	expired := time.Now().UTC().Add(-time.Hour)
	return &domain.Credential{
		ID:           "cred-1",
		UserID:       "user-1",
		Platform:     domain.PlatformEtsy,
		AccessToken:  &token,
		RefreshToken: &refresh,
		ExpiresAt:    &expired,
		Active:       true,
	}
}

func TestEnsureValidPassthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepository(ctrl)
	integ := integratormocks.NewMockMarketplaceIntegrator(ctrl)

	token := "fresh"
	future := time.Now().UTC().Add(time.Hour)
	cred := &domain.Credential{
		UserID:      "user-1",
		Platform:    domain.PlatformEtsy,
		AccessToken: &token,
		ExpiresAt:   &future,
	}

	manager := NewManager(credRepo)

	// No refresh call is expected on the mocks.
	got, err := manager.EnsureValid(context.Background(), cred, integ)

	require.NoError(t, err)
	assert.Same(t, cred, got)
}

func TestEnsureValidNoExpiryNeverRefreshes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepository(ctrl)
	integ := integratormocks.NewMockMarketplaceIntegrator(ctrl)

	key := "api-key"
	cred := &domain.Credential{
		UserID:   "user-1",
		Platform: domain.PlatformSwell,
		APIKey:   &key,
	}

	manager := NewManager(credRepo)

	got, err := manager.EnsureValid(context.Background(), cred, integ)

	require.NoError(t, err)
	assert.Same(t, cred, got)
}

func TestEnsureValidRefreshesAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepository(ctrl)
	integ := integratormocks.NewMockMarketplaceIntegrator(ctrl)

	cred := expiredCredential()
	newExpiry := time.Now().UTC().Add(time.Hour)

	integ.EXPECT().
		RefreshCredential(gomock.Any(), cred).
		Return(&domain.TokenPair{
			AccessToken:  "renewed",
			RefreshToken: "renewed-refresh",
			ExpiresAt:    newExpiry,
		}, nil)

	credRepo.EXPECT().
		UpdateTokens("user-1", domain.PlatformEtsy, "renewed", "renewed-refresh", newExpiry).
		Return(nil)

	manager := NewManager(credRepo)

	got, err := manager.EnsureValid(context.Background(), cred, integ)

	require.NoError(t, err)
	require.NotNil(t, got.AccessToken)
	assert.Equal(t, "renewed", *got.AccessToken)
	// The original credential is never mutated in place.
	assert.Equal(t, "stale", *cred.AccessToken)
}

func TestEnsureValidConcurrentCallersShareOneRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepository(ctrl)
	integ := integratormocks.NewMockMarketplaceIntegrator(ctrl)

	cred := expiredCredential()
	newExpiry := time.Now().UTC().Add(time.Hour)

	entered := make(chan struct{})
	release := make(chan struct{})

	// Exactly one refresh and one persist may happen, no matter how many
	// callers race.
	integ.EXPECT().
		RefreshCredential(gomock.Any(), cred).
		DoAndReturn(func(context.Context, *domain.Credential) (*domain.TokenPair, error) {
			close(entered)
			<-release
			return &domain.TokenPair{
				AccessToken:  "renewed",
				RefreshToken: "renewed-refresh",
				ExpiresAt:    newExpiry,
			}, nil
		}).
		Times(1)
	credRepo.EXPECT().
		UpdateTokens("user-1", domain.PlatformEtsy, "renewed", "renewed-refresh", newExpiry).
		Return(nil).
		Times(1)

	manager := NewManager(credRepo)

	var wg sync.WaitGroup
	results := make([]*domain.Credential, 2)
	errs := make([]error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = manager.EnsureValid(context.Background(), cred, integ)
	}()

	// Second caller joins while the first refresh is in flight.
	<-entered
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], errs[1] = manager.EnsureValid(context.Background(), cred, integ)
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		require.NotNil(t, results[i].AccessToken)
		assert.Equal(t, "renewed", *results[i].AccessToken)
	}
}

func TestEnsureValidRefreshFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepository(ctrl)
	integ := integratormocks.NewMockMarketplaceIntegrator(ctrl)

	cred := expiredCredential()

	integ.EXPECT().
		RefreshCredential(gomock.Any(), cred).
		Return(nil, errors.Wrap(domain.ErrAuthExpired, "refresh token revoked"))

	manager := NewManager(credRepo)

	_, err := manager.EnsureValid(context.Background(), cred, integ)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAuthExpired))
}
