package handler

import (
	"net/http"
	"strconv"

	"github.com/marketpulse/marketpulse-api/infrastructure/repository"
	"github.com/marketpulse/marketpulse-api/pkg/apiErrors"
	"github.com/marketpulse/marketpulse-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

const defaultEventsLimit = 50

// SyncHistory lists the caller's most recent sync attempts, newest first.
func SyncHistory(syncRepo repository.SyncEventRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.UserFromContext(r.Context())
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
			return
		}

		limit := defaultEventsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > 200 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit must be between 1 and 200", nil)
				return
			}
			limit = parsed
		}

		events, err := syncRepo.ListByUser(claims.UserID, limit)
		if err != nil {
			logrus.WithError(err).Error("error listing sync events")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing sync history", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"events": events})
	}
}
