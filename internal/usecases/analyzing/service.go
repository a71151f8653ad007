package analyzing

import (
	"fmt"

	"github.com/marketpulse/marketpulse-api/infrastructure/repository"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/shopspring/decimal"
)

const topItemsLimit = 10

// Analyzer computes revenue analytics on read over the stored sales.
type Analyzer interface {
	ComputeStats(userID string, filter *domain.SaleFilter) (*domain.AnalyticsSnapshot, error)
	ListSales(userID string, filter *domain.SaleFilter, page, limit int) (*SalesPage, error)
}

// SalesPage is one page of the sales listing plus the total match count for
// client-side pagination.
type SalesPage struct {
	Sales []*domain.Sale `json:"sales"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int            `json:"total"`
}

type Service struct {
	saleRepo repository.SaleRepository
}

func NewService(saleRepo repository.SaleRepository) Analyzer {
	return &Service{saleRepo: saleRepo}
}

// ComputeStats assembles the full snapshot from the aggregate queries. All
// aggregates run against the same filter, so the numbers agree with the
// listing for identical parameters.
func (s *Service) ComputeStats(userID string, filter *domain.SaleFilter) (*domain.AnalyticsSnapshot, error) {
	totals, err := s.saleRepo.Totals(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("computing totals: %w", err)
	}

	snapshot := &domain.AnalyticsSnapshot{
		TotalRevenue:      totals.Revenue,
		TotalSales:        totals.SalesCount,
		AverageOrderValue: decimal.Zero,
		DemoMode:          domain.DemoMode(totals.SampleRows, totals.RealRows),
	}

	if totals.SalesCount > 0 {
		snapshot.AverageOrderValue = totals.Revenue.
			Div(decimal.NewFromInt(int64(totals.SalesCount))).
			Round(2)
	}

	if snapshot.PlatformBreakdown, err = s.saleRepo.PlatformBreakdown(userID, filter); err != nil {
		return nil, fmt.Errorf("computing platform breakdown: %w", err)
	}

	if snapshot.Trend, err = s.saleRepo.DailyTrend(userID, filter); err != nil {
		return nil, fmt.Errorf("computing daily trend: %w", err)
	}

	if snapshot.TopItems, err = s.saleRepo.TopItems(userID, filter, topItemsLimit); err != nil {
		return nil, fmt.Errorf("computing top items: %w", err)
	}

	return snapshot, nil
}

func (s *Service) ListSales(userID string, filter *domain.SaleFilter, page, limit int) (*SalesPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	sales, err := s.saleRepo.List(userID, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}

	total, err := s.saleRepo.Count(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("counting sales: %w", err)
	}

	return &SalesPage{
		Sales: sales,
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}
