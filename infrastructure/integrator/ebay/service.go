package ebay

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

var sampleCatalog = []integrator.SampleItem{
	{Title: "Wireless Noise-Cancelling Headphones", Price: "89.99", Quantity: 1, Status: "FULFILLED", Buyer: "Grace Miller"},
	{Title: "Retro Game Console Bundle", Price: "129.00", Quantity: 1, Status: "FULFILLED", Buyer: "Oliver Brandt"},
	{Title: "Mechanical Keyboard, Brown Switches", Price: "74.50", Quantity: 2, Status: "NOT_STARTED", Buyer: "Ella Fontaine"},
	{Title: "Collectible Trading Card Lot", Price: "32.25", Quantity: 3, Status: "IN_PROGRESS", Buyer: "Lucas Varga"},
	{Title: "Refurbished Tablet 64GB", Price: "149.95", Quantity: 1, Status: "FULFILLED", Buyer: "Ines Castillo"},
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
	return domain.PlatformEbay
}

func (s *Service) demoMode() bool {
	return s.cfg.Ebay.ClientID == "" || s.cfg.Ebay.ClientSecret == ""
}

func (s *Service) Authorize(state string) (string, bool) {
	if s.demoMode() {
		return "", true
	}

	query := url.Values{}
	query.Set("response_type", "code")
	query.Set("client_id", s.cfg.Ebay.ClientID)
	query.Set("redirect_uri", s.cfg.Ebay.RedirectURI)
	query.Set("scope", "https://api.ebay.com/oauth/api_scope/sell.fulfillment.readonly")
	query.Set("state", state)

	return s.cfg.Ebay.AuthURL + "?" + query.Encode(), false
}

func (s *Service) ExchangeCode(ctx context.Context, code string) (*domain.CredentialFields, error) {
	if s.demoMode() {
		return sampleCredentialFields(), nil
	}

	token, err := s.client.ExchangeToken(ctx, "authorization_code", code)
	if err != nil {
		return nil, fmt.Errorf("ebay code exchange: %w", err)
	}

	expiresAt := time.Now().UTC().Add(time.Duration(token.ExpiresIn) * time.Second)
	storeName := "eBay Seller Account"

	return &domain.CredentialFields{
		StoreName:    &storeName,
		AccessToken:  &token.AccessToken,
		RefreshToken: &token.RefreshToken,
		ExpiresAt:    &expiresAt,
	}, nil
}

func (s *Service) FetchSales(ctx context.Context, cred *domain.Credential, window domain.DateRange) (*integrator.FetchResult, error) {
	if s.demoMode() {
		return &integrator.FetchResult{
			Sales: integrator.SampleSales(domain.PlatformEbay, window, sampleCatalog),
		}, nil
	}

	if cred.AccessToken == nil {
		return nil, fmt.Errorf("ebay credential incomplete: %w", domain.ErrAuthExpired)
	}

	logger := log.ForContext(ctx)

	result := &integrator.FetchResult{}
	offset := 0

	for page := 0; page < s.cfg.Sync.MaxPages; page++ {
		response, err := s.client.GetOrders(ctx, *cred.AccessToken, window.Start, window.End, offset)
		if err != nil {
			return nil, fmt.Errorf("ebay orders page %d: %w", page+1, err)
		}

		for _, order := range response.Orders {
			sales, skipped := NormalizeOrder(order)
			if skipped > 0 {
				logger.WithFields(log.Fields{
					"platform": domain.PlatformEbay,
					"order_id": order.OrderID,
					"skipped":  skipped,
				}).Warn("ebay: line items without cost skipped")
			}
			result.Sales = append(result.Sales, sales...)
			result.Skipped += skipped
		}

		offset += len(response.Orders)
		if response.Next == "" || len(response.Orders) == 0 || offset >= response.Total {
			break
		}
	}

	return result, nil
}

func (s *Service) RefreshCredential(ctx context.Context, cred *domain.Credential) (*domain.TokenPair, error) {
	if cred.RefreshToken == nil || *cred.RefreshToken == "" {
		return nil, fmt.Errorf("ebay credential has no refresh token: %w", domain.ErrAuthExpired)
	}

	token, err := s.client.ExchangeToken(ctx, "refresh_token", *cred.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("ebay token refresh: %w", err)
	}

	// eBay does not rotate refresh tokens on this grant.
	refreshToken := token.RefreshToken
	if refreshToken == "" {
		refreshToken = *cred.RefreshToken
	}

	return &domain.TokenPair{
		AccessToken:  token.AccessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().UTC().Add(time.Duration(token.ExpiresIn) * time.Second),
	}, nil
}

func sampleCredentialFields() *domain.CredentialFields {
	storeName := "Demo eBay Store"
	storeURL := "https://www.ebay.com/usr/demo"
	return &domain.CredentialFields{
		StoreName: &storeName,
		StoreURL:  &storeURL,
	}
}
