package swell

import (
	"context"
	"fmt"
	"strings"

	"github.com/marketpulse/marketpulse-api/infrastructure/integrator"
	"github.com/marketpulse/marketpulse-api/internal/config"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/marketpulse/marketpulse-api/pkg/log"
)

var sampleCatalog = []integrator.SampleItem{
	{Title: "Organic Cotton T-Shirt", Price: "28.00", Quantity: 2, Status: "complete", Buyer: "Freya Lundqvist"},
	{Title: "Cold Brew Coffee Kit", Price: "45.50", Quantity: 1, Status: "complete", Buyer: "Jonas Weber"},
	{Title: "Minimalist Canvas Backpack", Price: "68.00", Quantity: 1, Status: "shipped", Buyer: "Amara Diallo"},
	{Title: "Botanical Skincare Sampler", Price: "32.25", Quantity: 1, Status: "pending", Buyer: "Ruth Galloway"},
	{Title: "Recycled Wool Throw Blanket", Price: "84.90", Quantity: 1, Status: "complete", Buyer: "Theo Marchetti"},
}

type Service struct {
	cfg    *config.Config
	client Client
}

func New(cfg *config.Config, client Client) integrator.MarketplaceIntegrator {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

func (s *Service) Platform() domain.Platform {
	return domain.PlatformSwell
}

func (s *Service) demoMode() bool {
	return s.cfg.Swell.StoreID == ""
}

// Authorize has no consent URL for Swell: connections are made with a store
// ID and secret key pair handed straight to ExchangeCode.
func (s *Service) Authorize(state string) (string, bool) {
	if s.demoMode() {
		return "", true
	}
	return "", false
}

// ExchangeCode takes "storeID:secretKey" (or just the secret key, paired
// with the configured store ID) and verifies it against the orders endpoint
// before any credential is stored.
func (s *Service) ExchangeCode(ctx context.Context, code string) (*domain.CredentialFields, error) {
	if s.demoMode() {
		return sampleCredentialFields(), nil
	}

	storeID := s.cfg.Swell.StoreID
	secretKey := code
	if before, after, found := strings.Cut(code, ":"); found && before != "" {
		storeID = before
		secretKey = after
	}
	if secretKey == "" {
		return nil, fmt.Errorf("swell secret key is required")
	}

	if err := s.client.Ping(ctx, storeID, secretKey); err != nil {
		return nil, fmt.Errorf("swell connect test: %w", err)
	}

	storeURL := fmt.Sprintf("https://%s.swell.store", storeID)

	return &domain.CredentialFields{
		StoreID:   &storeID,
		StoreName: &storeID,
		StoreURL:  &storeURL,
		APIKey:    &secretKey,
	}, nil
}

func (s *Service) FetchSales(ctx context.Context, cred *domain.Credential, window domain.DateRange) (*integrator.FetchResult, error) {
	if s.demoMode() {
		return &integrator.FetchResult{
			Sales: integrator.SampleSales(domain.PlatformSwell, window, sampleCatalog),
		}, nil
	}

	if cred.APIKey == nil || cred.StoreID == nil {
		return nil, fmt.Errorf("swell credential incomplete: %w", domain.ErrAuthExpired)
	}

	logger := log.ForContext(ctx)

	result := &integrator.FetchResult{}
	fetched := 0

	for page := 1; page <= s.cfg.Sync.MaxPages; page++ {
		response, err := s.client.GetOrders(ctx, *cred.StoreID, *cred.APIKey, window.Start, window.End, page)
		if err != nil {
			return nil, fmt.Errorf("swell orders page %d: %w", page, err)
		}

		for _, order := range response.Results {
			sales, skipped := NormalizeOrder(order)
			if skipped > 0 {
				logger.WithFields(log.Fields{
					"platform": domain.PlatformSwell,
					"order_id": order.ID,
					"skipped":  skipped,
				}).Warn("swell: items without price skipped")
			}
			result.Sales = append(result.Sales, sales...)
			result.Skipped += skipped
		}

		fetched += len(response.Results)
		if len(response.Results) < ordersPageSize || fetched >= response.Count {
			break
		}
	}

	return result, nil
}

// RefreshCredential never applies to Swell; key pairs do not expire.
func (s *Service) RefreshCredential(ctx context.Context, cred *domain.Credential) (*domain.TokenPair, error) {
	return nil, fmt.Errorf("swell credentials are key-based and cannot be refreshed: %w", domain.ErrAuthExpired)
}

func sampleCredentialFields() *domain.CredentialFields {
	storeID := "demo"
	storeName := "Demo Swell Store"
	storeURL := "https://demo.swell.store"
	return &domain.CredentialFields{
		StoreID:   &storeID,
		StoreName: &storeName,
		StoreURL:  &storeURL,
	}
}
