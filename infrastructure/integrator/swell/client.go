package swell

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

const ordersPageSize = 100

type Client interface {
	GetOrders(ctx context.Context, storeID, secretKey string, start, end time.Time, page int) (*ordersResponse, error)
	// Ping verifies a key pair by requesting a single order.
	Ping(ctx context.Context, storeID, secretKey string) error
}

type swellClient struct {
	httpClient *http.Client
	cfg        config.Swell
	retry      utils.RetryPolicy
}

func NewClient(cfg *config.Config) Client {
	return &swellClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Sync.PlatformTimeoutSeconds) * time.Second,
		},
		cfg: cfg.Swell,
		retry: utils.RetryPolicy{
			Attempts: cfg.Sync.RetryAttempts,
			Backoff:  time.Duration(cfg.Sync.RetryBackoffMillis) * time.Millisecond,
		},
	}
}

func (c *swellClient) GetOrders(ctx context.Context, storeID, secretKey string, start, end time.Time, page int) (*ordersResponse, error) {
	endpoint, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + "/orders"

	query := endpoint.Query()
	query.Set("where[date_created][$gte]", start.UTC().Format(time.RFC3339))
	query.Set("where[date_created][$lte]", end.UTC().Format(time.RFC3339))
	query.Set("limit", strconv.Itoa(ordersPageSize))
	query.Set("page", strconv.Itoa(page))
	endpoint.RawQuery = query.Encode()

	body, err := c.get(ctx, endpoint.String(), storeID, secretKey)
	if err != nil {
		return nil, fmt.Errorf("fetching orders: %w", err)
	}

	var response ordersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decoding orders response: %w", err)
	}

	return &response, nil
}

func (c *swellClient) Ping(ctx context.Context, storeID, secretKey string) error {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/orders?limit=1"
	if _, err := c.get(ctx, endpoint, storeID, secretKey); err != nil {
		return fmt.Errorf("verifying keys: %w", err)
	}
	return nil
}

func (c *swellClient) get(ctx context.Context, endpoint, storeID, secretKey string) ([]byte, error) {
	return utils.DoWithRetry(ctx, c.httpClient, c.retry, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.SetBasicAuth(storeID, secretKey)
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
}
