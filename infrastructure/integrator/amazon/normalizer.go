package amazon

import (
	"strings"
	"time"

	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/shopspring/decimal"
)

// NormalizeOrder maps one Amazon order and its items into canonical sales,
// one per order item. Pure. ItemPrice on SP-API is the line total, so the
// unit price divides it by the ordered quantity. Items without a price are
// skipped and counted.
func NormalizeOrder(order *Order, items []*OrderItem) ([]*domain.Sale, int) {
	sales := make([]*domain.Sale, 0, len(items))
	skipped := 0

	saleDate, err := time.Parse(time.RFC3339, order.PurchaseDate)
	if err != nil {
		return nil, len(items)
	}

	var buyerName, buyerEmail *string
	if order.BuyerInfo != nil {
		if order.BuyerInfo.BuyerName != "" {
			name := order.BuyerInfo.BuyerName
			buyerName = &name
		}
		if order.BuyerInfo.BuyerEmail != "" {
			email := order.BuyerInfo.BuyerEmail
			buyerEmail = &email
		}
	}

	shippingAddress := formatShippingAddress(order.ShippingAddress)

	for _, item := range items {
		if item.ItemPrice == nil || item.ItemPrice.Amount == "" {
			skipped++
			continue
		}

		price, err := decimal.NewFromString(item.ItemPrice.Amount)
		if err != nil || price.IsNegative() {
			skipped++
			continue
		}

		currency := item.ItemPrice.CurrencyCode
		if currency == "" {
			currency = "USD"
		}

		quantity := item.QuantityOrdered
		if quantity < 1 {
			quantity = 1
		}

		sales = append(sales, &domain.Sale{
			Platform:        domain.PlatformAmazon,
			OrderID:         order.AmazonOrderID,
			ItemID:          item.OrderItemID,
			ItemTitle:       item.Title,
			Quantity:        quantity,
			UnitPrice:       price.Div(decimal.NewFromInt(int64(quantity))),
			Currency:        currency,
			BuyerName:       buyerName,
			BuyerEmail:      buyerEmail,
			SaleDate:        saleDate.UTC(),
			Status:          order.OrderStatus,
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
	for _, part := range []string{addr.AddressLine1, addr.City, addr.StateOrRegion, addr.PostalCode, addr.CountryCode} {
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
