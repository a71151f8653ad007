package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/marketpulse/marketpulse-api/infrastructure/repository"
	"github.com/marketpulse/marketpulse-api/internal/config"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/marketpulse/marketpulse-api/internal/usecases/syncing"
	"github.com/marketpulse/marketpulse-api/pkg/log"
	"github.com/sirupsen/logrus"
)

// SyncSchedulerService runs the nightly marketplace sync for every user with
// at least one active connection. Disabled by default; the on-demand sync
// endpoint stays the primary path.
type SyncSchedulerService struct {
	scheduler           *gocron.Scheduler
	cfg                 *config.Config
	credRepo            repository.CredentialRepository
	syncer              syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSyncSchedulerService(
	cfg *config.Config,
	credRepo repository.CredentialRepository,
	syncer syncing.Syncer,
) *SyncSchedulerService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.SyncScheduler.CronSchedule,
		"sync_enabled":  cfg.SyncScheduler.Enabled,
		"lookback_days": cfg.Sync.LookbackDays,
	}).Info("sync scheduler configuration loaded")

	return &SyncSchedulerService{
		scheduler: gocron.NewScheduler(time.UTC),
		cfg:       cfg,
		credRepo:  credRepo,
		syncer:    syncer,
	}
}

func (s *SyncSchedulerService) Start(ctx context.Context) error {
	if !s.cfg.SyncScheduler.Enabled {
		logrus.Info("scheduled sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.cfg.SyncScheduler.CronSchedule).Info("starting sync scheduler")

	_, err := s.scheduler.Cron(s.cfg.SyncScheduler.CronSchedule).Do(func() {
		s.syncAllUsers(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling marketplace sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllUsers runs one scheduled pass. A pass still in flight when the next
// trigger fires is not stacked; the trigger is skipped.
func (s *SyncSchedulerService) syncAllUsers(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduled sync already running, skipping trigger")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	userIDs, err := s.credRepo.ListUserIDsWithActive()
	if err != nil {
		logrus.WithError(err).Error("error listing users for scheduled sync")
		return
	}

	if len(userIDs) == 0 {
		logrus.Info("no users with active connections, nothing to sync")
		return
	}

	window := domain.LastDays(s.cfg.Sync.LookbackDays, time.Now().UTC())

	totalSynced := 0
	failures := 0
	for _, userID := range userIDs {
		runCtx, _ := log.WithCorrelationID(ctx)

		summary, err := s.syncer.SyncAll(runCtx, userID, window)
		if err != nil {
			failures++
			logrus.WithError(err).WithField("user_id", userID).Error("scheduled sync failed for user")
			continue
		}
		totalSynced += summary.TotalSynced
	}

	logrus.WithFields(logrus.Fields{
		"duration":     time.Since(startTime).String(),
		"users":        len(userIDs),
		"failures":     failures,
		"total_synced": totalSynced,
	}).Info("scheduled sync finished")

	s.lastSyncCompletedAt = time.Now()
}

// Status reports whether a pass is running and the last start/finish times.
func (s *SyncSchedulerService) Status() (running bool, startedAt, completedAt time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning, s.lastSyncStartedAt, s.lastSyncCompletedAt
}
