package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marketpulse/marketpulse-api/infrastructure/integrator"
	integratormocks "github.com/marketpulse/marketpulse-api/infrastructure/integrator/mocks"
	"github.com/marketpulse/marketpulse-api/infrastructure/integrator/tokens"
	"github.com/marketpulse/marketpulse-api/infrastructure/repository/mocks"
	"github.com/marketpulse/marketpulse-api/internal/config"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/pkg/errors"
)

func testConfig() *config.Config {
	return &config.Config{
		Sync: config.Sync{
			LookbackDays:           30,
			PlatformTimeoutSeconds: 5,
			MaxPages:               10,
			RetryAttempts:          1,
			RetryBackoffMillis:     1,
		},
	}
}

func testWindow() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

func activeCredential(userID string, platform domain.Platform) *domain.Credential {
	token := "token"
	return &domain.Credential{
		ID:          "cred-" + platform.String(),
		UserID:      userID,
		Platform:    platform,
		AccessToken: &token,
		Active:      true,
	}
}

func saleFixture(platform domain.Platform, orderID, itemID string) *domain.Sale {
	return &domain.Sale{
		Platform:  platform,
		OrderID:   orderID,
		ItemID:    itemID,
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(10),
		Currency:  "USD",
		SaleDate:  time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func newIntegratorMock(ctrl *gomock.Controller, platform domain.Platform) *integratormocks.MockMarketplaceIntegrator {
	integ := integratormocks.NewMockMarketplaceIntegrator(ctrl)
	integ.EXPECT().Platform().Return(platform).AnyTimes()
	return integ
}

func TestSyncAllPlatformIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	syncRepo := mocks.NewMockSyncEventRepository(ctrl)

	etsyInteg := newIntegratorMock(ctrl, domain.PlatformEtsy)
	ebayInteg := newIntegratorMock(ctrl, domain.PlatformEbay)

	etsyCred := activeCredential("user-1", domain.PlatformEtsy)
	ebayCred := activeCredential("user-1", domain.PlatformEbay)

	credRepo.EXPECT().
		ListActive("user-1").
		Return([]*domain.Credential{etsyCred, ebayCred}, nil)

	// Etsy delivers two sales; eBay fails outright. The failure must not
	// touch Etsy's outcome.
	etsyInteg.EXPECT().
		FetchSales(gomock.Any(), etsyCred, testWindow()).
		Return(&integrator.FetchResult{
			Sales: []*domain.Sale{
				saleFixture(domain.PlatformEtsy, "r-1", "t-1"),
				saleFixture(domain.PlatformEtsy, "r-1", "t-2"),
			},
		}, nil)
	ebayInteg.EXPECT().
		FetchSales(gomock.Any(), ebayCred, testWindow()).
		Return(nil, errors.New("ebay is down"))

	saleRepo.EXPECT().InsertIfAbsent(gomock.Any()).Return(true, nil).Times(2)

	syncRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(event *domain.SyncEvent) error {
		switch event.Platform {
		case domain.PlatformEtsy:
			assert.Equal(t, domain.SyncStatusSuccess, event.Status)
			assert.Equal(t, 2, event.ItemsSynced)
			assert.Nil(t, event.ErrorMessage)
		case domain.PlatformEbay:
			assert.Equal(t, domain.SyncStatusFailed, event.Status)
			require.NotNil(t, event.ErrorMessage)
		}
		return nil
	}).Times(2)

	service := NewService(testConfig(), credRepo, saleRepo, syncRepo,
		tokens.NewManager(credRepo),
		[]integrator.MarketplaceIntegrator{etsyInteg, ebayInteg},
	)

	summary, err := service.SyncAll(context.Background(), "user-1", testWindow())

	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalSynced)
	require.Len(t, summary.PerPlatform, 2)

	// Results come back sorted by platform for a stable response shape.
	assert.Equal(t, domain.PlatformEbay, summary.PerPlatform[0].Platform)
	assert.False(t, summary.PerPlatform[0].Success)
	assert.NotEmpty(t, summary.PerPlatform[0].Error)

	assert.Equal(t, domain.PlatformEtsy, summary.PerPlatform[1].Platform)
	assert.True(t, summary.PerPlatform[1].Success)
	assert.Equal(t, 2, summary.PerPlatform[1].ItemsSynced)
}

func TestSyncAllNothingConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	syncRepo := mocks.NewMockSyncEventRepository(ctrl)

	credRepo.EXPECT().ListActive("user-1").Return(nil, nil)

	service := NewService(testConfig(), credRepo, saleRepo, syncRepo,
		tokens.NewManager(credRepo), nil)

	summary, err := service.SyncAll(context.Background(), "user-1", testWindow())

	require.NoError(t, err)
	assert.Zero(t, summary.TotalSynced)
	assert.Empty(t, summary.PerPlatform)
}

func TestSyncPlatformIdempotentResync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	syncRepo := mocks.NewMockSyncEventRepository(ctrl)

	etsyInteg := newIntegratorMock(ctrl, domain.PlatformEtsy)
	cred := activeCredential("user-1", domain.PlatformEtsy)

	credRepo.EXPECT().GetActive("user-1", domain.PlatformEtsy).Return(cred, nil)

	etsyInteg.EXPECT().
		FetchSales(gomock.Any(), cred, testWindow()).
		Return(&integrator.FetchResult{
			Sales: []*domain.Sale{saleFixture(domain.PlatformEtsy, "r-1", "t-1")},
		}, nil)

	// The row already exists: the re-sync counts nothing as new.
	saleRepo.EXPECT().InsertIfAbsent(gomock.Any()).Return(false, nil)
	syncRepo.EXPECT().Create(gomock.Any()).Return(nil)

	service := NewService(testConfig(), credRepo, saleRepo, syncRepo,
		tokens.NewManager(credRepo),
		[]integrator.MarketplaceIntegrator{etsyInteg},
	)

	result, err := service.SyncPlatform(context.Background(), "user-1", domain.PlatformEtsy, testWindow())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Zero(t, result.ItemsSynced)
}

func TestSyncPlatformRefusedRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	syncRepo := mocks.NewMockSyncEventRepository(ctrl)

	etsyInteg := newIntegratorMock(ctrl, domain.PlatformEtsy)

	cred := activeCredential("user-1", domain.PlatformEtsy)
	expired := time.Now().UTC().Add(-time.Hour)
	cred.ExpiresAt = &expired

	credRepo.EXPECT().GetActive("user-1", domain.PlatformEtsy).Return(cred, nil)

	etsyInteg.EXPECT().
		RefreshCredential(gomock.Any(), cred).
		Return(nil, errors.Wrap(domain.ErrAuthExpired, "refresh token revoked"))

	// The failed attempt is still recorded against the stale credential.
	syncRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(event *domain.SyncEvent) error {
		assert.Equal(t, "user-1", event.UserID)
		assert.Equal(t, domain.PlatformEtsy, event.Platform)
		assert.Equal(t, domain.SyncStatusFailed, event.Status)
		require.NotNil(t, event.ErrorMessage)
		return nil
	})

	service := NewService(testConfig(), credRepo, saleRepo, syncRepo,
		tokens.NewManager(credRepo),
		[]integrator.MarketplaceIntegrator{etsyInteg},
	)

	result, err := service.SyncPlatform(context.Background(), "user-1", domain.PlatformEtsy, testWindow())

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "authorization expired, reconnect the platform", result.Error)
	assert.Zero(t, result.ItemsSynced)
}

func TestSyncPlatformNotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	syncRepo := mocks.NewMockSyncEventRepository(ctrl)

	credRepo.EXPECT().GetActive("user-1", domain.PlatformSwell).Return(nil, nil)

	service := NewService(testConfig(), credRepo, saleRepo, syncRepo,
		tokens.NewManager(credRepo), nil)

	_, err := service.SyncPlatform(context.Background(), "user-1", domain.PlatformSwell, testWindow())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotConnected))
}

func TestSyncPlatformPartialOnSkippedItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credRepo := mocks.NewMockCredentialRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)
	syncRepo := mocks.NewMockSyncEventRepository(ctrl)

	etsyInteg := newIntegratorMock(ctrl, domain.PlatformEtsy)
	cred := activeCredential("user-1", domain.PlatformEtsy)

	credRepo.EXPECT().GetActive("user-1", domain.PlatformEtsy).Return(cred, nil)

	etsyInteg.EXPECT().
		FetchSales(gomock.Any(), cred, testWindow()).
		Return(&integrator.FetchResult{
			Sales:   []*domain.Sale{saleFixture(domain.PlatformEtsy, "r-1", "t-1")},
			Skipped: 3,
		}, nil)

	saleRepo.EXPECT().InsertIfAbsent(gomock.Any()).Return(true, nil)
	syncRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(event *domain.SyncEvent) error {
		assert.Equal(t, domain.SyncStatusPartial, event.Status)
		return nil
	})

	service := NewService(testConfig(), credRepo, saleRepo, syncRepo,
		tokens.NewManager(credRepo),
		[]integrator.MarketplaceIntegrator{etsyInteg},
	)

	result, err := service.SyncPlatform(context.Background(), "user-1", domain.PlatformEtsy, testWindow())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.ItemsSynced)
	assert.Equal(t, 3, result.ItemsSkipped)
}
