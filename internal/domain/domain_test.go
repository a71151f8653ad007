package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	for _, known := range AllPlatforms {
		parsed, err := ParsePlatform(known.String())
		require.NoError(t, err)
		assert.Equal(t, known, parsed)
	}

	_, err := ParsePlatform("shopify")
	assert.Error(t, err)

	// Matching is case-sensitive, same as the stored platform column.
	_, err = ParsePlatform("Etsy")
	assert.Error(t, err)
}

func TestSaleRevenue(t *testing.T) {
	sale := &Sale{
		UnitPrice: decimal.RequireFromString("24.50"),
		Quantity:  3,
	}

	assert.Equal(t, "73.5", sale.Revenue().String())
}

func TestDemoMode(t *testing.T) {
	tests := []struct {
		name       string
		sampleRows int
		realRows   int
		want       bool
	}{
		{name: "no rows at all", sampleRows: 0, realRows: 0, want: false},
		{name: "only real rows", sampleRows: 0, realRows: 10, want: false},
		{name: "only sample rows", sampleRows: 5, realRows: 0, want: true},
		{name: "mixed rows", sampleRows: 1, realRows: 9, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DemoMode(tt.sampleRows, tt.realRows))
		})
	}
}

func TestCredentialExpired(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.True(t, (&Credential{ExpiresAt: &past}).Expired(now))
	assert.True(t, (&Credential{ExpiresAt: &now}).Expired(now))
	assert.False(t, (&Credential{ExpiresAt: &future}).Expired(now))
	// Key-based credentials carry no expiry and never expire.
	assert.False(t, (&Credential{}).Expired(now))
}

func TestLastDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	window := LastDays(30, now)

	assert.Equal(t, time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, now, window.End)
}
