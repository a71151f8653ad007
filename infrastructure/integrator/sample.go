package integrator

import (
	"fmt"
	"strings"
	"time"

	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/shopspring/decimal"
)

// SampleItem seeds one deterministic demo order line. Each adapter declares
// its own catalog so demo dashboards look plausibly platform-specific.
type SampleItem struct {
	Title    string
	Price    string
	Quantity int
	Status   string
	Buyer    string
}

// SampleSales expands a platform's sample catalog into normalized sale rows
// spread evenly across the window. Output is fully deterministic for a given
// window so repeated demo syncs dedup to a stable set: order IDs carry the
// SAMPLE- prefix and every row is flagged sample.
func SampleSales(platform domain.Platform, window domain.DateRange, catalog []SampleItem) []*domain.Sale {
	if len(catalog) == 0 {
		return nil
	}

	windowDays := int(window.End.Sub(window.Start).Hours() / 24)
	if windowDays < 1 {
		windowDays = 1
	}

	sales := make([]*domain.Sale, 0, len(catalog))
	for i, item := range catalog {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			continue
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		// Anchor dates to the window start so the same window yields the
		// same rows.
		offset := (i * windowDays) / len(catalog)
		saleDate := window.Start.AddDate(0, 0, offset).Truncate(24 * time.Hour).Add(12 * time.Hour)

		buyer := item.Buyer
		email := strings.ToLower(strings.ReplaceAll(buyer, " ", ".")) + "@example.com"

		orderID := fmt.Sprintf("%s%s-%04d", domain.SampleOrderPrefix, strings.ToUpper(platform.String()), 1001+i)

		sales = append(sales, &domain.Sale{
			Platform:   platform,
			OrderID:    orderID,
			ItemID:     fmt.Sprintf("item-%04d", 1+i),
			ItemTitle:  item.Title,
			Quantity:   quantity,
			UnitPrice:  price,
			Currency:   "USD",
			BuyerName:  &buyer,
			BuyerEmail: &email,
			SaleDate:   saleDate,
			Status:     item.Status,
			IsSample:   true,
		})
	}

	return sales
}
