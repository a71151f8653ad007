package connecting

import (
	"context"
	"fmt"

	"github.com/marketpulse/marketpulse-api/infrastructure/integrator"
	"github.com/marketpulse/marketpulse-api/infrastructure/repository"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/marketpulse/marketpulse-api/pkg/log"
)

// Connector manages marketplace connection lifecycles: begin, complete,
// list, disconnect.
type Connector interface {
	// BeginConnection starts connecting a platform. For OAuth platforms it
	// returns the consent URL; in demo mode (or for key-based platforms
	// given their keys upfront) it completes immediately.
	BeginConnection(ctx context.Context, userID string, platform domain.Platform, state string) (*ConnectionStart, error)
	// CompleteConnection trades the OAuth code (or key pair) for a
	// credential, verifying it against the platform before anything is
	// stored. Reconnecting replaces the previous active credential.
	CompleteConnection(ctx context.Context, userID string, platform domain.Platform, code string) (*domain.Credential, error)
	// Disconnect deactivates the active credential; stored sales survive.
	Disconnect(ctx context.Context, userID string, platform domain.Platform) error
	// ListConnections returns the user's active connections with each
	// platform's most recent sync outcome attached.
	ListConnections(userID string) ([]*Connection, error)
}

// ConnectionStart is the outcome of BeginConnection: either a consent URL to
// redirect to, or an already-established connection.
type ConnectionStart struct {
	AuthURL    string             `json:"auth_url,omitempty"`
	Connection *domain.Credential `json:"connection,omitempty"`
	Demo       bool               `json:"demo"`
}

// Connection is one active credential enriched with its last sync event.
type Connection struct {
	*domain.Credential
	LastSync *domain.SyncEvent `json:"last_sync,omitempty"`
}

type Service struct {
	credRepo    repository.CredentialRepository
	syncRepo    repository.SyncEventRepository
	integrators map[domain.Platform]integrator.MarketplaceIntegrator
}

func NewService(
	credRepo repository.CredentialRepository,
	syncRepo repository.SyncEventRepository,
	integrators []integrator.MarketplaceIntegrator,
) Connector {
	byPlatform := make(map[domain.Platform]integrator.MarketplaceIntegrator, len(integrators))
	for _, integ := range integrators {
		byPlatform[integ.Platform()] = integ
	}

	return &Service{
		credRepo:    credRepo,
		syncRepo:    syncRepo,
		integrators: byPlatform,
	}
}

func (s *Service) BeginConnection(ctx context.Context, userID string, platform domain.Platform, state string) (*ConnectionStart, error) {
	integ, ok := s.integrators[platform]
	if !ok {
		return nil, fmt.Errorf("unsupported platform %q", platform)
	}

	authURL, demo := integ.Authorize(state)
	if authURL != "" {
		return &ConnectionStart{AuthURL: authURL}, nil
	}

	// No consent step: demo mode, or a key-based platform whose keys arrive
	// through CompleteConnection. Demo connects right away.
	if !demo {
		return &ConnectionStart{}, nil
	}

	cred, err := s.CompleteConnection(ctx, userID, platform, "")
	if err != nil {
		return nil, err
	}

	return &ConnectionStart{Connection: cred, Demo: true}, nil
}

func (s *Service) CompleteConnection(ctx context.Context, userID string, platform domain.Platform, code string) (*domain.Credential, error) {
	integ, ok := s.integrators[platform]
	if !ok {
		return nil, fmt.Errorf("unsupported platform %q", platform)
	}

	fields, err := integ.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("connecting %s: %w", platform, err)
	}

	cred, err := s.credRepo.Upsert(ctx, userID, platform, fields)
	if err != nil {
		return nil, fmt.Errorf("storing %s credential: %w", platform, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":  userID,
		"platform": platform,
	}).Info("platform connected")

	return cred, nil
}

func (s *Service) Disconnect(ctx context.Context, userID string, platform domain.Platform) error {
	cred, err := s.credRepo.GetActive(userID, platform)
	if err != nil {
		return fmt.Errorf("loading %s connection: %w", platform, err)
	}
	if cred == nil {
		return domain.ErrNotConnected
	}

	if err := s.credRepo.Deactivate(ctx, userID, platform); err != nil {
		return fmt.Errorf("disconnecting %s: %w", platform, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":  userID,
		"platform": platform,
	}).Info("platform disconnected")

	return nil
}

func (s *Service) ListConnections(userID string) ([]*Connection, error) {
	creds, err := s.credRepo.ListActive(userID)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}

	lastSyncs, err := s.syncRepo.LatestPerPlatform(userID)
	if err != nil {
		return nil, fmt.Errorf("loading last syncs: %w", err)
	}

	connections := make([]*Connection, 0, len(creds))
	for _, cred := range creds {
		connections = append(connections, &Connection{
			Credential: cred,
			LastSync:   lastSyncs[cred.Platform],
		})
	}

	return connections, nil
}
