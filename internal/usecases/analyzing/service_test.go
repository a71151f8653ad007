package analyzing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marketpulse/marketpulse-api/infrastructure/repository"
	"github.com/marketpulse/marketpulse-api/infrastructure/repository/mocks"
	"github.com/marketpulse/marketpulse-api/internal/domain"
)

func TestComputeStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	filter := &domain.SaleFilter{}

	saleRepo.EXPECT().
		Totals("user-1", filter).
		Return(&repository.SaleTotals{
			Revenue:    decimal.RequireFromString("100.00"),
			SalesCount: 3,
			SampleRows: 0,
			RealRows:   3,
		}, nil)
	saleRepo.EXPECT().
		PlatformBreakdown("user-1", filter).
		Return([]domain.PlatformRevenue{
			{Platform: domain.PlatformEtsy, Revenue: decimal.RequireFromString("100.00"), SalesCount: 3},
		}, nil)
	saleRepo.EXPECT().
		DailyTrend("user-1", filter).
		Return([]domain.TrendPoint{}, nil)
	saleRepo.EXPECT().
		TopItems("user-1", filter, topItemsLimit).
		Return([]domain.TopItem{
			{ItemTitle: "Walnut Serving Board", Platform: domain.PlatformEtsy},
		}, nil)

	snapshot, err := NewService(saleRepo).ComputeStats("user-1", filter)

	require.NoError(t, err)
	assert.Equal(t, "100", snapshot.TotalRevenue.String())
	assert.Equal(t, 3, snapshot.TotalSales)
	// 100 / 3 rounded to cents.
	assert.Equal(t, "33.33", snapshot.AverageOrderValue.String())
	assert.False(t, snapshot.DemoMode)
	assert.Len(t, snapshot.PlatformBreakdown, 1)
	assert.Len(t, snapshot.TopItems, 1)
}

func TestComputeStatsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	filter := &domain.SaleFilter{}

	saleRepo.EXPECT().
		Totals("user-1", filter).
		Return(&repository.SaleTotals{Revenue: decimal.Zero}, nil)
	saleRepo.EXPECT().PlatformBreakdown("user-1", filter).Return(nil, nil)
	saleRepo.EXPECT().DailyTrend("user-1", filter).Return(nil, nil)
	saleRepo.EXPECT().TopItems("user-1", filter, topItemsLimit).Return(nil, nil)

	snapshot, err := NewService(saleRepo).ComputeStats("user-1", filter)

	require.NoError(t, err)
	assert.True(t, snapshot.TotalRevenue.IsZero())
	assert.Equal(t, 0, snapshot.TotalSales)
	// No division by zero on an empty set.
	assert.True(t, snapshot.AverageOrderValue.IsZero())
	assert.False(t, snapshot.DemoMode)
}

func TestComputeStatsDemoMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	filter := &domain.SaleFilter{}

	saleRepo.EXPECT().
		Totals("user-1", filter).
		Return(&repository.SaleTotals{
			Revenue:    decimal.RequireFromString("50.00"),
			SalesCount: 2,
			SampleRows: 2,
			RealRows:   0,
		}, nil)
	saleRepo.EXPECT().PlatformBreakdown("user-1", filter).Return(nil, nil)
	saleRepo.EXPECT().DailyTrend("user-1", filter).Return(nil, nil)
	saleRepo.EXPECT().TopItems("user-1", filter, topItemsLimit).Return(nil, nil)

	snapshot, err := NewService(saleRepo).ComputeStats("user-1", filter)

	require.NoError(t, err)
	assert.True(t, snapshot.DemoMode)
}

func TestListSalesClampsPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleRepo := mocks.NewMockSaleRepository(ctrl)
	filter := &domain.SaleFilter{}

	// Out-of-range page and limit fall back to defaults before the
	// repository is asked.
	saleRepo.EXPECT().
		List("user-1", filter, 1, 20).
		Return([]*domain.Sale{{OrderID: "123"}}, nil)
	saleRepo.EXPECT().
		Count("user-1", filter).
		Return(41, nil)

	page, err := NewService(saleRepo).ListSales("user-1", filter, -3, 500)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 41, page.Total)
	assert.Len(t, page.Sales, 1)
}
