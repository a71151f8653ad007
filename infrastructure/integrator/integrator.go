package integrator

import (
	"context"

	"github.com/marketpulse/marketpulse-api/internal/domain"
)

// MarketplaceIntegrator is the contract every platform adapter fulfills. The
// sync orchestrator depends only on this interface, never on a platform's
// wire format.
type MarketplaceIntegrator interface {
	// Platform identifies the marketplace this adapter talks to.
	Platform() domain.Platform

	// Authorize returns the OAuth consent URL for the platform, or demo=true
	// when no process-wide API keys are configured and the adapter serves
	// sample data instead.
	Authorize(state string) (authURL string, demo bool)

	// ExchangeCode trades an OAuth authorization code (or, for key-based
	// platforms, the raw keys) for credential fields, verifying the
	// connection in the process.
	ExchangeCode(ctx context.Context, code string) (*domain.CredentialFields, error)

	// FetchSales pulls every order in the window, page by page, and returns
	// them normalized into canonical sales. Line items the normalizer
	// rejects are counted in the result, not silently dropped.
	FetchSales(ctx context.Context, cred *domain.Credential, window domain.DateRange) (*FetchResult, error)

	// RefreshCredential exchanges the credential's refresh token for a new
	// token pair. Called only by the token refresh manager.
	RefreshCredential(ctx context.Context, cred *domain.Credential) (*domain.TokenPair, error)
}

// FetchResult is one platform's normalized haul for a sync window.
type FetchResult struct {
	Sales   []*domain.Sale
	Skipped int
}
