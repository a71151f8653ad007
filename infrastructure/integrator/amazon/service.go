package amazon

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
	{Title: "Stainless Steel Water Bottle 32oz", Price: "21.99", Quantity: 2, Status: "Shipped", Buyer: "Hannah Price"},
	{Title: "Bamboo Cutting Board Set", Price: "34.95", Quantity: 1, Status: "Shipped", Buyer: "Mateo Silva"},
	{Title: "LED Desk Lamp with USB Port", Price: "27.50", Quantity: 1, Status: "Unshipped", Buyer: "Priya Nair"},
	{Title: "Yoga Mat, Extra Thick", Price: "29.99", Quantity: 1, Status: "Shipped", Buyer: "Daniel Okafor"},
	{Title: "Cast Iron Skillet 12 Inch", Price: "39.00", Quantity: 1, Status: "Pending", Buyer: "Clara Jensen"},
	{Title: "Wireless Phone Charger Pad", Price: "18.75", Quantity: 3, Status: "Shipped", Buyer: "Tom Acker"},
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
	return domain.PlatformAmazon
}

func (s *Service) demoMode() bool {
	return s.cfg.Amazon.ClientID == "" || s.cfg.Amazon.ClientSecret == ""
}

func (s *Service) Authorize(state string) (string, bool) {
	if s.demoMode() {
		return "", true
	}

	query := url.Values{}
	query.Set("application_id", s.cfg.Amazon.ClientID)
	query.Set("redirect_uri", s.cfg.Amazon.RedirectURI)
	query.Set("state", state)

	return s.cfg.Amazon.AuthURL + "?" + query.Encode(), false
}

func (s *Service) ExchangeCode(ctx context.Context, code string) (*domain.CredentialFields, error) {
	if s.demoMode() {
		return sampleCredentialFields(), nil
	}

	token, err := s.client.ExchangeToken(ctx, "authorization_code", code)
	if err != nil {
		return nil, fmt.Errorf("amazon code exchange: %w", err)
	}

	expiresAt := time.Now().UTC().Add(time.Duration(token.ExpiresIn) * time.Second)
	storeName := "Amazon Seller Account"

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
			Sales: integrator.SampleSales(domain.PlatformAmazon, window, sampleCatalog),
		}, nil
	}

	if cred.AccessToken == nil {
		return nil, fmt.Errorf("amazon credential incomplete: %w", domain.ErrAuthExpired)
	}

	logger := log.ForContext(ctx)

	result := &integrator.FetchResult{}
	nextToken := ""

	for page := 0; page < s.cfg.Sync.MaxPages; page++ {
		payload, err := s.client.GetOrders(ctx, *cred.AccessToken, window.Start, window.End, nextToken)
		if err != nil {
			return nil, fmt.Errorf("amazon orders page %d: %w", page+1, err)
		}

		for _, order := range payload.Orders {
			items, err := s.client.GetOrderItems(ctx, *cred.AccessToken, order.AmazonOrderID)
			if err != nil {
				return nil, fmt.Errorf("amazon order %s items: %w", order.AmazonOrderID, err)
			}

			sales, skipped := NormalizeOrder(order, items)
			if skipped > 0 {
				logger.WithFields(log.Fields{
					"platform": domain.PlatformAmazon,
					"order_id": order.AmazonOrderID,
					"skipped":  skipped,
				}).Warn("amazon: order items without price skipped")
			}
			result.Sales = append(result.Sales, sales...)
			result.Skipped += skipped
		}

		nextToken = payload.NextToken
		if nextToken == "" {
			break
		}
	}

	return result, nil
}

func (s *Service) RefreshCredential(ctx context.Context, cred *domain.Credential) (*domain.TokenPair, error) {
	if cred.RefreshToken == nil || *cred.RefreshToken == "" {
		return nil, fmt.Errorf("amazon credential has no refresh token: %w", domain.ErrAuthExpired)
	}

	token, err := s.client.ExchangeToken(ctx, "refresh_token", *cred.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("amazon token refresh: %w", err)
	}

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
	storeName := "Demo Amazon Store"
	storeURL := "https://www.amazon.com/shops/demo"
	return &domain.CredentialFields{
		StoreName: &storeName,
		StoreURL:  &storeURL,
	}
}
