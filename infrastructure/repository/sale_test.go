package repository

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketpulse/marketpulse-api/internal/domain"
)

func buildFiltered(t *testing.T, filter *domain.SaleFilter) (string, []interface{}) {
	t.Helper()
	query, args, err := applySaleFilter(squirrel.Select("COUNT(*)").From(salesTable), "user-1", filter).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	require.NoError(t, err)
	return query, args
}

func TestApplySaleFilterNilFilter(t *testing.T) {
	query, args := buildFiltered(t, nil)

	assert.Equal(t, "SELECT COUNT(*) FROM sales s WHERE s.user_id = $1", query)
	assert.Equal(t, []interface{}{"user-1"}, args)
}

func TestApplySaleFilterAllFields(t *testing.T) {
	platform := domain.PlatformEtsy
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	query, args := buildFiltered(t, &domain.SaleFilter{
		Platform:  &platform,
		StartDate: &start,
		EndDate:   &end,
		Search:    "walnut",
	})

	assert.Contains(t, query, "s.user_id = $1")
	assert.Contains(t, query, "s.platform = $2")
	assert.Contains(t, query, "s.sale_date >= $3")
	assert.Contains(t, query, "s.sale_date <= $4")
	assert.Contains(t, query, "s.item_title ILIKE $5")
	assert.Contains(t, query, "s.order_id ILIKE $6")
	assert.Contains(t, query, "s.buyer_name ILIKE $7")

	require.Len(t, args, 7)
	assert.Equal(t, domain.PlatformEtsy, args[1])
	// The search term matches as a substring across the OR'd columns.
	assert.Equal(t, "%walnut%", args[4])
	assert.Equal(t, "%walnut%", args[5])
	assert.Equal(t, "%walnut%", args[6])
}

func TestApplySaleFilterSearchOnly(t *testing.T) {
	query, args := buildFiltered(t, &domain.SaleFilter{Search: "SAMPLE-"})

	assert.Contains(t, query, "(s.item_title ILIKE $2 OR s.order_id ILIKE $3 OR s.buyer_name ILIKE $4)")
	assert.Len(t, args, 4)
}
