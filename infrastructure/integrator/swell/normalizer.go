package swell

import (
	"strings"
	"time"

	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/shopspring/decimal"
)

// NormalizeOrder maps one Swell order into canonical sales, one per item.
// Pure. Swell item prices are already per unit. Items without a price are
// skipped and counted.
func NormalizeOrder(order *Order) ([]*domain.Sale, int) {
	sales := make([]*domain.Sale, 0, len(order.Items))
	skipped := 0

	saleDate, err := time.Parse(time.RFC3339, order.DateCreated)
	if err != nil {
		return nil, len(order.Items)
	}

	orderID := order.Number
	if orderID == "" {
		orderID = order.ID
	}

	var buyerName, buyerEmail *string
	if order.Account != nil {
		if order.Account.Name != "" {
			name := order.Account.Name
			buyerName = &name
		}
		if order.Account.Email != "" {
			email := order.Account.Email
			buyerEmail = &email
		}
	}

	shippingAddress := formatShippingAddress(order.Shipping)

	currency := order.Currency
	if currency == "" {
		currency = "USD"
	}

	for _, item := range order.Items {
		if item.Price == nil || item.Price.String() == "" || item.Price.String() == "null" {
			skipped++
			continue
		}

		price, err := decimal.NewFromString(item.Price.String())
		if err != nil || price.IsNegative() {
			skipped++
			continue
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		itemID := item.ID
		if itemID == "" {
			itemID = item.ProductID
		}

		sales = append(sales, &domain.Sale{
			Platform:        domain.PlatformSwell,
			OrderID:         orderID,
			ItemID:          itemID,
			ItemTitle:       item.ProductName,
			Quantity:        quantity,
			UnitPrice:       price,
			Currency:        currency,
			BuyerName:       buyerName,
			BuyerEmail:      buyerEmail,
			SaleDate:        saleDate.UTC(),
			Status:          order.Status,
			ShippingAddress: shippingAddress,
		})
	}

	return sales, skipped
}

func formatShippingAddress(addr *Address) *string {
	if addr == nil {
		return nil
	}

	parts := make([]string, 0, 5)
	for _, part := range []string{addr.Address1, addr.City, addr.State, addr.Zip, addr.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return nil
	}

	formatted := strings.Join(parts, ", ")
	return &formatted
}
