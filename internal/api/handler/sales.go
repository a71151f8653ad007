package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/marketpulse/marketpulse-api/internal/usecases/analyzing"
	"github.com/marketpulse/marketpulse-api/pkg/apiErrors"
	"github.com/marketpulse/marketpulse-api/pkg/middleware"
	"github.com/marketpulse/marketpulse-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

func ListSales(service analyzing.Analyzer) http.HandlerFunc {
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

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		result, err := service.ListSales(claims.UserID, filter, page, limit)
		if err != nil {
			logrus.WithError(err).Error("error listing sales")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing sales", nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// saleFilterFromQuery parses the filter parameters shared by the sales
// listing and the stats endpoint.
func saleFilterFromQuery(w http.ResponseWriter, r *http.Request) (*domain.SaleFilter, bool) {
	query := r.URL.Query()
	filter := &domain.SaleFilter{
		Search: query.Get("search"),
	}

	if raw := query.Get("platform"); raw != "" {
		platform, err := domain.ParsePlatform(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownPlatform, err.Error(), nil)
			return nil, false
		}
		filter.Platform = &platform
	}

	if raw := query.Get("start_date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date must be YYYY-MM-DD", nil)
			return nil, false
		}
		filter.StartDate = parsed
	}

	if raw := query.Get("end_date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date must be YYYY-MM-DD", nil)
			return nil, false
		}
		// end_date names a whole day; sales up to its last instant must match.
		end := parsed.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "start_date must not be after end_date", nil)
		return nil, false
	}

	return filter, true
}
