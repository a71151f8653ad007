package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketpulse/marketpulse-api/internal/domain"
)

func TestSaleFilterFromQueryInclusiveEndDate(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/sales?start_date=2026-03-01&end_date=2026-03-10", nil)
	w := httptest.NewRecorder()

	filter, ok := saleFilterFromQuery(w, r)

	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)

	// A sale at noon on the named end day still falls inside the window.
	require.NotNil(t, filter.EndDate)
	noon := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.False(t, noon.After(*filter.EndDate))
	// The following day does not.
	assert.True(t, filter.EndDate.Before(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
}

func TestSaleFilterFromQuerySingleDay(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/sales?start_date=2026-03-10&end_date=2026-03-10", nil)
	w := httptest.NewRecorder()

	filter, ok := saleFilterFromQuery(w, r)

	require.True(t, ok)
	assert.True(t, filter.StartDate.Before(*filter.EndDate))
}

func TestSaleFilterFromQueryReversedDates(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/sales?start_date=2026-03-10&end_date=2026-03-01", nil)
	w := httptest.NewRecorder()

	_, ok := saleFilterFromQuery(w, r)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaleFilterFromQueryPlatform(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/sales?platform=etsy&search=walnut", nil)
	w := httptest.NewRecorder()

	filter, ok := saleFilterFromQuery(w, r)

	require.True(t, ok)
	require.NotNil(t, filter.Platform)
	assert.Equal(t, domain.PlatformEtsy, *filter.Platform)
	assert.Equal(t, "walnut", filter.Search)
}
