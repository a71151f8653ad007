package ebay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/marketpulse/marketpulse-api/internal/config"
	"github.com/marketpulse/marketpulse-api/pkg/utils"
)

const ordersPageSize = 100

type Client interface {
	GetOrders(ctx context.Context, accessToken string, start, end time.Time, offset int) (*ordersResponse, error)
	ExchangeToken(ctx context.Context, grantType, codeOrToken string) (*tokenResponse, error)
}

type ebayClient struct {
	httpClient *http.Client
	cfg        config.Ebay
	retry      utils.RetryPolicy
}

func NewClient(cfg *config.Config) Client {
	return &ebayClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Sync.PlatformTimeoutSeconds) * time.Second,
		},
		cfg: cfg.Ebay,
		retry: utils.RetryPolicy{
			Attempts: cfg.Sync.RetryAttempts,
			Backoff:  time.Duration(cfg.Sync.RetryBackoffMillis) * time.Millisecond,
		},
	}
}

func (c *ebayClient) GetOrders(ctx context.Context, accessToken string, start, end time.Time, offset int) (*ordersResponse, error) {
	endpoint, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + "/sell/fulfillment/v1/order"

	filter := fmt.Sprintf("creationdate:[%s..%s]",
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	)

	query := endpoint.Query()
	query.Set("filter", filter)
	query.Set("limit", strconv.Itoa(ordersPageSize))
	query.Set("offset", strconv.Itoa(offset))
	endpoint.RawQuery = query.Encode()

	body, err := utils.DoWithRetry(ctx, c.httpClient, c.retry, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching orders: %w", err)
	}

	var response ordersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decoding orders response: %w", err)
	}

	return &response, nil
}

// ExchangeToken calls the eBay OAuth token endpoint with app credentials in
// the Basic authorization header, for both the code exchange and refresh
// grants. eBay does not rotate refresh tokens, so refresh responses carry an
// empty refresh_token and the caller keeps the old one.
func (c *ebayClient) ExchangeToken(ctx context.Context, grantType, codeOrToken string) (*tokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", grantType)
	switch grantType {
	case "authorization_code":
		form.Set("code", codeOrToken)
		form.Set("redirect_uri", c.cfg.RedirectURI)
	case "refresh_token":
		form.Set("refresh_token", codeOrToken)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/identity/v1/oauth2/token"
	basic := base64.StdEncoding.EncodeToString([]byte(c.cfg.ClientID + ":" + c.cfg.ClientSecret))

	body, err := utils.DoWithRetry(ctx, c.httpClient, c.retry, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Authorization", "Basic "+basic)
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
