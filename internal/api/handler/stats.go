package handler

import (
	"net/http"

	"github.com/marketpulse/marketpulse-api/internal/usecases/analyzing"
	"github.com/marketpulse/marketpulse-api/pkg/apiErrors"
	"github.com/marketpulse/marketpulse-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// GetStats computes the analytics snapshot for the caller under the same
// filter semantics as the sales listing.
func GetStats(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.UserFromContext(r.Context())
		if claims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
			return
		}

		filter, ok := saleFilterFromQuery(w, r)
		if !ok {
			return
		}

		snapshot, err := service.ComputeStats(claims.UserID, filter)
		if err != nil {
			logrus.WithError(err).Error("error computing stats")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error computing stats", nil)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}
