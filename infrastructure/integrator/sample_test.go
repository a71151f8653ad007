package integrator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketpulse/marketpulse-api/internal/domain"
)

func TestSampleSalesDeterministic(t *testing.T) {
	catalog := []SampleItem{
		{Title: "Mug", Price: "24.50", Quantity: 2, Status: "Paid", Buyer: "Ava Thompson"},
		{Title: "Journal", Price: "42.00", Quantity: 1, Status: "Shipped", Buyer: "Ethan Walsh"},
	}
	window := domain.DateRange{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	first := SampleSales(domain.PlatformEtsy, window, catalog)
	second := SampleSales(domain.PlatformEtsy, window, catalog)

	// Repeated demo syncs must produce identical rows so dedup collapses
	// them to a stable set.
	require.Len(t, first, 2)
	require.Len(t, second, 2)
	for i := range first {
		assert.Equal(t, first[i].OrderID, second[i].OrderID)
		assert.Equal(t, first[i].ItemID, second[i].ItemID)
		assert.Equal(t, first[i].SaleDate, second[i].SaleDate)
		assert.True(t, first[i].UnitPrice.Equal(second[i].UnitPrice))
	}
}

func TestSampleSalesMarkedAsSample(t *testing.T) {
	catalog := []SampleItem{
		{Title: "Mug", Price: "24.50", Quantity: 2, Status: "Paid", Buyer: "Ava Thompson"},
	}
	window := domain.DateRange{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	sales := SampleSales(domain.PlatformEbay, window, catalog)

	require.Len(t, sales, 1)
	sale := sales[0]
	assert.True(t, sale.IsSample)
	assert.True(t, strings.HasPrefix(sale.OrderID, domain.SampleOrderPrefix))
	require.NotNil(t, sale.BuyerEmail)
	assert.Equal(t, "ava.thompson@example.com", *sale.BuyerEmail)
	assert.False(t, sale.SaleDate.Before(window.Start))
	assert.False(t, sale.SaleDate.After(window.End))
}

func TestSampleSalesEmptyCatalog(t *testing.T) {
	window := domain.DateRange{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
	}

	assert.Nil(t, SampleSales(domain.PlatformSwell, window, nil))
}
