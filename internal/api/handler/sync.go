package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/marketpulse/marketpulse-api/internal/config"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/marketpulse/marketpulse-api/internal/usecases/syncing"
	"github.com/marketpulse/marketpulse-api/pkg/apiErrors"
	"github.com/marketpulse/marketpulse-api/pkg/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const maxLookbackDays = 365

// SyncAll triggers a synchronous sync over every connected platform. The
// response is always 200; per-platform failures live inside the summary.
func SyncAll(cfg *config.Config, service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.UserFromContext(r.Context())
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
			return
		}

		window, ok := syncWindow(w, r, cfg)
		if !ok {
			return
		}

		// A client disconnect must not cancel platform calls mid-page; the
		// upserts are idempotent, so a discarded result reconciles on the
		// next sync. Per-platform timeouts still bound the work.
		summary, err := service.SyncAll(context.WithoutCancel(r.Context()), claims.UserID, window)
		if err != nil {
			logrus.WithError(err).Error("sync failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error syncing platforms", nil)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func SyncPlatform(cfg *config.Config, service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.UserFromContext(r.Context())
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
			return
		}

		platform, ok := platformParam(w, r)
		if !ok {
			return
		}

		window, ok := syncWindow(w, r, cfg)
		if !ok {
			return
		}

		result, err := service.SyncPlatform(context.WithoutCancel(r.Context()), claims.UserID, platform, window)
		if err != nil {
			if errors.Is(err, domain.ErrNotConnected) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Platform is not connected", nil)
				return
			}
			logrus.WithError(err).Error("platform sync failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error syncing platform", nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// syncWindow reads the optional days parameter, bounded so a caller cannot
// request an unbounded crawl.
func syncWindow(w http.ResponseWriter, r *http.Request, cfg *config.Config) (domain.DateRange, bool) {
	days := cfg.Sync.LookbackDays

	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxLookbackDays {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days must be between 1 and 365", nil)
			return domain.DateRange{}, false
		}
		days = parsed
	}

	return domain.LastDays(days, time.Now().UTC()), true
}
