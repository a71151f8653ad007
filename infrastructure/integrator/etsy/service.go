package etsy

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/marketpulse/marketpulse-api/infrastructure/integrator"
	"github.com/marketpulse/marketpulse-api/internal/config"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/marketpulse/marketpulse-api/pkg/log"
)

const authorizeURL = "https://www.etsy.com/oauth/connect"

var sampleCatalog = []integrator.SampleItem{
	{Title: "Handmade Ceramic Mug", Price: "24.50", Quantity: 2, Status: "Paid", Buyer: "Ava Thompson"},
	{Title: "Macrame Wall Hanging", Price: "48.00", Quantity: 1, Status: "Shipped", Buyer: "Liam Carter"},
	{Title: "Personalized Birthstone Necklace", Price: "36.75", Quantity: 1, Status: "Paid", Buyer: "Sofia Reyes"},
	{Title: "Vintage Botanical Print Set", Price: "19.99", Quantity: 3, Status: "Completed", Buyer: "Noah Kim"},
	{Title: "Hand-Poured Soy Candle", Price: "14.25", Quantity: 4, Status: "Shipped", Buyer: "Mia Novak"},
	{Title: "Leather Travel Journal", Price: "42.00", Quantity: 1, Status: "Completed", Buyer: "Ethan Walsh"},
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
	return domain.PlatformEtsy
}

// demoMode is true when no Etsy app keys are configured process-wide.
func (s *Service) demoMode() bool {
	return s.cfg.Etsy.ClientID == "" || s.cfg.Etsy.ClientSecret == ""
}

func (s *Service) Authorize(state string) (string, bool) {
	if s.demoMode() {
		return "", true
	}

	query := url.Values{}
	query.Set("response_type", "code")
	query.Set("client_id", s.cfg.Etsy.ClientID)
	query.Set("redirect_uri", s.cfg.Etsy.RedirectURI)
	query.Set("scope", "transactions_r shops_r")
	query.Set("state", state)

	return authorizeURL + "?" + query.Encode(), false
}

func (s *Service) ExchangeCode(ctx context.Context, code string) (*domain.CredentialFields, error) {
	if s.demoMode() {
		return sampleCredentialFields(), nil
	}

	token, err := s.client.ExchangeToken(ctx, "authorization_code", code)
	if err != nil {
		return nil, fmt.Errorf("etsy code exchange: %w", err)
	}

	shopID, shopName, shopURL, err := s.client.GetShop(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("etsy connect test: %w", err)
	}

	expiresAt := time.Now().UTC().Add(time.Duration(token.ExpiresIn) * time.Second)

	return &domain.CredentialFields{
		StoreID:      &shopID,
		StoreName:    &shopName,
		StoreURL:     &shopURL,
		AccessToken:  &token.AccessToken,
		RefreshToken: &token.RefreshToken,
		ExpiresAt:    &expiresAt,
	}, nil
}

func (s *Service) FetchSales(ctx context.Context, cred *domain.Credential, window domain.DateRange) (*integrator.FetchResult, error) {
	if s.demoMode() {
		return &integrator.FetchResult{
			Sales: integrator.SampleSales(domain.PlatformEtsy, window, sampleCatalog),
		}, nil
	}

	if cred.AccessToken == nil || cred.StoreID == nil {
		return nil, fmt.Errorf("etsy credential incomplete: %w", domain.ErrAuthExpired)
	}

	logger := log.ForContext(ctx)

	result := &integrator.FetchResult{}
	offset := 0

	// Page until the platform reports no more results or the configured
	// ceiling bounds worst-case latency.
	for page := 0; page < s.cfg.Sync.MaxPages; page++ {
		response, err := s.client.GetReceipts(ctx, *cred.AccessToken, *cred.StoreID, window.Start, window.End, offset)
		if err != nil {
			return nil, fmt.Errorf("etsy receipts page %d: %w", page+1, err)
		}

		for _, receipt := range response.Results {
			sales, skipped := NormalizeReceipt(receipt)
			if skipped > 0 {
				logger.WithFields(log.Fields{
					"platform":   domain.PlatformEtsy,
					"receipt_id": receipt.ReceiptID,
					"skipped":    skipped,
				}).Warn("etsy: transactions without price skipped")
			}
			result.Sales = append(result.Sales, sales...)
			result.Skipped += skipped
		}

		offset += len(response.Results)
		if len(response.Results) < receiptsPageSize || offset >= response.Count {
			break
		}
	}

	return result, nil
}

func (s *Service) RefreshCredential(ctx context.Context, cred *domain.Credential) (*domain.TokenPair, error) {
	if cred.RefreshToken == nil || *cred.RefreshToken == "" {
		return nil, fmt.Errorf("etsy credential has no refresh token: %w", domain.ErrAuthExpired)
	}

	token, err := s.client.ExchangeToken(ctx, "refresh_token", *cred.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("etsy token refresh: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    time.Now().UTC().Add(time.Duration(token.ExpiresIn) * time.Second),
	}, nil
}

func sampleCredentialFields() *domain.CredentialFields {
	storeID := "demo"
	storeName := "Demo Etsy Shop"
	storeURL := "https://www.etsy.com/shop/demo"
	return &domain.CredentialFields{
		StoreID:   &storeID,
		StoreName: &storeName,
		StoreURL:  &storeURL,
	}
}
