package amazon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marketpulse/marketpulse-api/internal/config"
	"github.com/marketpulse/marketpulse-api/pkg/utils"
)

// lwaTokenURL is the Login with Amazon token endpoint, shared by every
// SP-API region.
const lwaTokenURL = "https://api.amazon.com/auth/o2/token"

const defaultMarketplaceID = "ATVPDKIKX0DER"

type Client interface {
	GetOrders(ctx context.Context, accessToken string, start, end time.Time, nextToken string) (*ordersPayload, error)
	GetOrderItems(ctx context.Context, accessToken, orderID string) ([]*OrderItem, error)
	ExchangeToken(ctx context.Context, grantType, codeOrToken string) (*tokenResponse, error)
}

type amazonClient struct {
	httpClient *http.Client
	cfg        config.Amazon
	retry      utils.RetryPolicy
}

func NewClient(cfg *config.Config) Client {
	return &amazonClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Sync.PlatformTimeoutSeconds) * time.Second,
		},
		cfg: cfg.Amazon,
		retry: utils.RetryPolicy{
			Attempts: cfg.Sync.RetryAttempts,
			Backoff:  time.Duration(cfg.Sync.RetryBackoffMillis) * time.Millisecond,
		},
	}
}

func (c *amazonClient) GetOrders(ctx context.Context, accessToken string, start, end time.Time, nextToken string) (*ordersPayload, error) {
	endpoint, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + "/orders/v0/orders"

	query := endpoint.Query()
	query.Set("MarketplaceIds", defaultMarketplaceID)
	if nextToken != "" {
		query.Set("NextToken", nextToken)
	} else {
		query.Set("CreatedAfter", start.UTC().Format(time.RFC3339))
		query.Set("CreatedBefore", end.UTC().Format(time.RFC3339))
	}
	endpoint.RawQuery = query.Encode()

	var response ordersResponse
	if err := c.getJSON(ctx, endpoint.String(), accessToken, &response); err != nil {
		return nil, fmt.Errorf("fetching orders: %w", err)
	}

	return &response.Payload, nil
}

func (c *amazonClient) GetOrderItems(ctx context.Context, accessToken, orderID string) ([]*OrderItem, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/orders/v0/orders/" + url.PathEscape(orderID) + "/orderItems"

	var response orderItemsResponse
	if err := c.getJSON(ctx, endpoint, accessToken, &response); err != nil {
		return nil, fmt.Errorf("fetching order items: %w", err)
	}

	return response.Payload.OrderItems, nil
}

func (c *amazonClient) getJSON(ctx context.Context, endpoint, accessToken string, out interface{}) error {
	body, err := utils.DoWithRetry(ctx, c.httpClient, c.retry, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("x-amz-access-token", accessToken)
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return err
	}

	return json.Unmarshal(body, out)
}

// ExchangeToken calls the LWA token endpoint with app credentials in the
// form body. Amazon keeps the refresh token stable across refresh grants.
func (c *amazonClient) ExchangeToken(ctx context.Context, grantType, codeOrToken string) (*tokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", grantType)
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	switch grantType {
	case "authorization_code":
		form.Set("code", codeOrToken)
		form.Set("redirect_uri", c.cfg.RedirectURI)
	case "refresh_token":
		form.Set("refresh_token", codeOrToken)
	}

	body, err := utils.DoWithRetry(ctx, c.httpClient, c.retry, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, lwaTokenURL, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("exchanging token: %w", err)
	}

	var response tokenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	if response.AccessToken == "" {
		return nil, fmt.Errorf("token response missing access_token")
	}

	return &response, nil
}
