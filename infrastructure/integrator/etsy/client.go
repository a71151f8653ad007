package etsy

import (
	"context"
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

const receiptsPageSize = 100

type Client interface {
	GetReceipts(ctx context.Context, accessToken, shopID string, start, end time.Time, offset int) (*receiptsResponse, error)
	ExchangeToken(ctx context.Context, grantType, codeOrToken string) (*tokenResponse, error)
	GetShop(ctx context.Context, accessToken string) (shopID, shopName, shopURL string, err error)
}

type etsyClient struct {
	httpClient *http.Client
	cfg        config.Etsy
	retry      utils.RetryPolicy
}

func NewClient(cfg *config.Config) Client {
	return &etsyClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Sync.PlatformTimeoutSeconds) * time.Second,
		},
		cfg: cfg.Etsy,
		retry: utils.RetryPolicy{
			Attempts: cfg.Sync.RetryAttempts,
			Backoff:  time.Duration(cfg.Sync.RetryBackoffMillis) * time.Millisecond,
		},
	}
}

// GetReceipts fetches one page of shop receipts with embedded transactions.
func (c *etsyClient) GetReceipts(ctx context.Context, accessToken, shopID string, start, end time.Time, offset int) (*receiptsResponse, error) {
	endpoint, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + "/application/shops/" + shopID + "/receipts"

	query := endpoint.Query()
	query.Set("min_created", strconv.FormatInt(start.Unix(), 10))
	query.Set("max_created", strconv.FormatInt(end.Unix(), 10))
	query.Set("limit", strconv.Itoa(receiptsPageSize))
	query.Set("offset", strconv.Itoa(offset))
	endpoint.RawQuery = query.Encode()

	body, err := utils.DoWithRetry(ctx, c.httpClient, c.retry, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)
		req.Header.Set("x-api-key", c.cfg.ClientID)
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching receipts: %w", err)
	}

	var response receiptsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decoding receipts response: %w", err)
	}

	return &response, nil
}

// ExchangeToken handles both grant types of the Etsy OAuth token endpoint:
// authorization_code on connect and refresh_token on renewal.
func (c *etsyClient) ExchangeToken(ctx context.Context, grantType, codeOrToken string) (*tokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", grantType)
	form.Set("client_id", c.cfg.ClientID)
	switch grantType {
	case "authorization_code":
		form.Set("code", codeOrToken)
		form.Set("redirect_uri", c.cfg.RedirectURI)
	case "refresh_token":
		form.Set("refresh_token", codeOrToken)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/public/oauth/token"

	body, err := utils.DoWithRetry(ctx, c.httpClient, c.retry, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
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

// GetShop resolves the shop behind a token, used as the connect-test.
func (c *etsyClient) GetShop(ctx context.Context, accessToken string) (string, string, string, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/application/users/me/shops"

	body, err := utils.DoWithRetry(ctx, c.httpClient, c.retry, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)
		req.Header.Set("x-api-key", c.cfg.ClientID)
		return req, nil
	})
	if err != nil {
		return "", "", "", fmt.Errorf("fetching shop: %w", err)
	}

	var shop struct {
		ShopID   int64  `json:"shop_id"`
		ShopName string `json:"shop_name"`
		URL      string `json:"url"`
	}
	if err := json.Unmarshal(body, &shop); err != nil {
		return "", "", "", fmt.Errorf("decoding shop response: %w", err)
	}

	return strconv.FormatInt(shop.ShopID, 10), shop.ShopName, shop.URL, nil
}
