package syncing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/marketpulse/marketpulse-api/infrastructure/integrator"
	"github.com/marketpulse/marketpulse-api/infrastructure/integrator/tokens"
	"github.com/marketpulse/marketpulse-api/infrastructure/repository"
	"github.com/marketpulse/marketpulse-api/internal/config"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/marketpulse/marketpulse-api/pkg/log"
)

// Syncer pulls orders from every connected marketplace into local storage.
type Syncer interface {
	// SyncAll fans out over the user's active connections and aggregates the
	// per-platform outcomes. One platform failing never stops the others;
	// only a storage failure aborts the whole call.
	SyncAll(ctx context.Context, userID string, window domain.DateRange) (*domain.SyncSummary, error)
	// SyncPlatform syncs a single connected platform.
	SyncPlatform(ctx context.Context, userID string, platform domain.Platform, window domain.DateRange) (*domain.PlatformSyncResult, error)
}

type Service struct {
	cfg         *config.Config
	credRepo    repository.CredentialRepository
	saleRepo    repository.SaleRepository
	syncRepo    repository.SyncEventRepository
	tokens      tokens.Manager
	integrators map[domain.Platform]integrator.MarketplaceIntegrator
}

func NewService(
	cfg *config.Config,
	credRepo repository.CredentialRepository,
	saleRepo repository.SaleRepository,
	syncRepo repository.SyncEventRepository,
	tokenManager tokens.Manager,
	integrators []integrator.MarketplaceIntegrator,
) Syncer {
	byPlatform := make(map[domain.Platform]integrator.MarketplaceIntegrator, len(integrators))
	for _, integ := range integrators {
		byPlatform[integ.Platform()] = integ
	}

	return &Service{
		cfg:         cfg,
		credRepo:    credRepo,
		saleRepo:    saleRepo,
		syncRepo:    syncRepo,
		tokens:      tokenManager,
		integrators: byPlatform,
	}
}

func (s *Service) SyncAll(ctx context.Context, userID string, window domain.DateRange) (*domain.SyncSummary, error) {
	creds, err := s.credRepo.ListActive(userID)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}

	summary := &domain.SyncSummary{
		PerPlatform: make([]domain.PlatformSyncResult, 0, len(creds)),
	}
	if len(creds) == 0 {
		return summary, nil
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make([]domain.PlatformSyncResult, 0, len(creds))
	)

	for _, cred := range creds {
		wg.Add(1)
		go func(cred *domain.Credential) {
			defer wg.Done()

			result := s.syncOne(ctx, cred, window)

			mu.Lock()
			results = append(results, *result)
			mu.Unlock()
		}(cred)
	}

	wg.Wait()

	// Goroutine completion order is arbitrary; keep the response stable.
	sort.Slice(results, func(i, j int) bool {
		return results[i].Platform < results[j].Platform
	})

	for _, result := range results {
		summary.TotalSynced += result.ItemsSynced
		summary.PerPlatform = append(summary.PerPlatform, result)
	}

	return summary, nil
}

func (s *Service) SyncPlatform(ctx context.Context, userID string, platform domain.Platform, window domain.DateRange) (*domain.PlatformSyncResult, error) {
	cred, err := s.credRepo.GetActive(userID, platform)
	if err != nil {
		return nil, fmt.Errorf("loading %s connection: %w", platform, err)
	}
	if cred == nil {
		return nil, fmt.Errorf("%s: %w", platform, domain.ErrNotConnected)
	}

	return s.syncOne(ctx, cred, window), nil
}

// syncOne runs one platform under its own timeout and records the attempt as
// a sync event regardless of outcome.
func (s *Service) syncOne(ctx context.Context, cred *domain.Credential, window domain.DateRange) *domain.PlatformSyncResult {
	result := &domain.PlatformSyncResult{Platform: cred.Platform}
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id":  cred.UserID,
		"platform": cred.Platform,
	})

	integ, ok := s.integrators[cred.Platform]
	if !ok {
		result.Error = fmt.Sprintf("no integrator registered for %s", cred.Platform)
		s.recordEvent(cred, result, logger)
		return result
	}

	timeout := time.Duration(s.cfg.Sync.PlatformTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	refreshed, err := s.tokens.EnsureValid(ctx, cred, integ)
	if err != nil {
		logger.WithError(err).Warn("token refresh failed")
		result.Error = friendlyError(err)
		s.recordEvent(cred, result, logger)
		return result
	}
	cred = refreshed

	fetched, err := integ.FetchSales(ctx, cred, window)
	if err != nil {
		logger.WithError(err).Warn("platform fetch failed")
		result.Error = friendlyError(err)
		s.recordEvent(cred, result, logger)
		return result
	}

	inserted := 0
	for _, sale := range fetched.Sales {
		sale.UserID = cred.UserID
		ok, err := s.saleRepo.InsertIfAbsent(sale)
		if err != nil {
			// Storage failing mid-batch poisons every platform equally;
			// report what landed and stop this one.
			logger.WithError(err).Error("persisting sale failed")
			result.ItemsSynced = inserted
			result.Error = domain.ErrStorage.Error()
			s.recordEvent(cred, result, logger)
			return result
		}
		if ok {
			inserted++
		}
	}

	result.Success = true
	result.ItemsSynced = inserted
	result.ItemsSkipped = fetched.Skipped

	logger.WithFields(log.Fields{
		"fetched":  len(fetched.Sales),
		"inserted": inserted,
		"skipped":  fetched.Skipped,
	}).Info("platform sync finished")

	s.recordEvent(cred, result, logger)
	return result
}

func (s *Service) recordEvent(cred *domain.Credential, result *domain.PlatformSyncResult, logger log.Logger) {
	event := &domain.SyncEvent{
		UserID:      cred.UserID,
		Platform:    cred.Platform,
		ItemsSynced: result.ItemsSynced,
		Status:      eventStatus(result),
	}
	if result.Error != "" {
		msg := result.Error
		event.ErrorMessage = &msg
	}

	if err := s.syncRepo.Create(event); err != nil {
		// The audit row is best-effort; losing it must not fail a sync that
		// already landed its sales.
		logger.WithError(err).Error("recording sync event failed")
	}
}

func eventStatus(result *domain.PlatformSyncResult) domain.SyncStatus {
	switch {
	case result.Success && result.ItemsSkipped == 0:
		return domain.SyncStatusSuccess
	case result.Success:
		return domain.SyncStatusPartial
	default:
		return domain.SyncStatusFailed
	}
}

// friendlyError keeps platform wire details out of API responses while
// preserving the sentinel classification.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuthExpired):
		return "authorization expired, reconnect the platform"
	case errors.Is(err, context.DeadlineExceeded):
		return "platform timed out"
	default:
		return err.Error()
	}
}
