package tokens

import (
	"context"
	"fmt"
	"time"

	"github.com/marketpulse/marketpulse-api/infrastructure/integrator"
	"github.com/marketpulse/marketpulse-api/infrastructure/repository"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/marketpulse/marketpulse-api/pkg/log"
	"golang.org/x/sync/singleflight"
)

// refreshSkew renews tokens slightly before their expiry so a token does not
// die between the check and the platform call.
const refreshSkew = 2 * time.Minute

// Manager refreshes marketplace access tokens on demand. Concurrent callers
// needing the same credential share a single refresh via singleflight, so a
// sync fan-out never races two refresh calls against one platform.
type Manager interface {
	// EnsureValid returns a credential whose access token is usable now,
	// refreshing and persisting it first when expired. A credential that
	// cannot be refreshed surfaces domain.ErrAuthExpired.
	EnsureValid(ctx context.Context, cred *domain.Credential, integ integrator.MarketplaceIntegrator) (*domain.Credential, error)
}

type manager struct {
	credRepo repository.CredentialRepository
	group    singleflight.Group
	now      func() time.Time
}

func NewManager(credRepo repository.CredentialRepository) Manager {
	return &manager{
		credRepo: credRepo,
		now:      time.Now,
	}
}

func (m *manager) EnsureValid(ctx context.Context, cred *domain.Credential, integ integrator.MarketplaceIntegrator) (*domain.Credential, error) {
	now := m.now().UTC()
	if !cred.Expired(now.Add(refreshSkew)) {
		return cred, nil
	}

	key := cred.UserID + "|" + cred.Platform.String()

	result, err, shared := m.group.Do(key, func() (interface{}, error) {
		return m.refresh(ctx, cred, integ)
	})
	if err != nil {
		return nil, err
	}

	if shared {
		log.ForContext(ctx).WithFields(log.Fields{
			"user_id":  cred.UserID,
			"platform": cred.Platform,
		}).Debug("token refresh shared with concurrent caller")
	}

	return result.(*domain.Credential), nil
}

func (m *manager) refresh(ctx context.Context, cred *domain.Credential, integ integrator.MarketplaceIntegrator) (*domain.Credential, error) {
	pair, err := integ.RefreshCredential(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("refreshing %s token: %w", cred.Platform, err)
	}

	if err := m.credRepo.UpdateTokens(cred.UserID, cred.Platform, pair.AccessToken, pair.RefreshToken, pair.ExpiresAt); err != nil {
		return nil, fmt.Errorf("persisting refreshed %s token: %w", cred.Platform, err)
	}

	refreshed := *cred
	refreshed.AccessToken = &pair.AccessToken
	refreshed.RefreshToken = &pair.RefreshToken
	expiresAt := pair.ExpiresAt
	refreshed.ExpiresAt = &expiresAt

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":  cred.UserID,
		"platform": cred.Platform,
	}).Info("access token refreshed")

	return &refreshed, nil
}
