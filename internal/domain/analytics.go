package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlatformRevenue is one row of the per-platform breakdown.
type PlatformRevenue struct {
	Platform   Platform        `json:"platform"`
	Revenue    decimal.Decimal `json:"revenue"`
	SalesCount int             `json:"sales_count"`
}

// TrendPoint is one day of the revenue trend.
type TrendPoint struct {
	Date       time.Time       `json:"date"`
	Revenue    decimal.Decimal `json:"revenue"`
	SalesCount int             `json:"sales_count"`
}

// TopItem is one entry of the revenue-ranked product list.
type TopItem struct {
	ItemTitle  string          `json:"item_title"`
	Platform   Platform        `json:"platform"`
	Revenue    decimal.Decimal `json:"revenue"`
	UnitsSold  int             `json:"units_sold"`
	SalesCount int             `json:"sales_count"`
}

// AnalyticsSnapshot is computed on read over the matching sale rows; it is
// never persisted. Numeric aggregates are zero for an empty result set.
type AnalyticsSnapshot struct {
	TotalRevenue      decimal.Decimal   `json:"total_revenue"`
	TotalSales        int               `json:"total_sales"`
	AverageOrderValue decimal.Decimal   `json:"average_order_value"`
	PlatformBreakdown []PlatformRevenue `json:"platform_breakdown"`
	Trend             []TrendPoint      `json:"trend"`
	TopItems          []TopItem         `json:"top_items"`
	DemoMode          bool              `json:"demo_mode"`
}

// DemoMode applies the conservative demo/live rule: any sample row in the
// matching set marks the whole snapshot as demo. Only a set made purely of
// real rows (or an empty one) counts as live.
func DemoMode(sampleRows, realRows int) bool {
	return sampleRows > 0
}
