package ebay

import (
	"strings"
	"time"

	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/shopspring/decimal"
)

// NormalizeOrder maps one eBay order into canonical sales, one per line
// item. Pure. Line items without a cost are skipped and counted; sibling
// items of the same order still come through.
func NormalizeOrder(order Order) ([]*domain.Sale, int) {
	sales := make([]*domain.Sale, 0, len(order.LineItems))
	skipped := 0

	saleDate, err := time.Parse(time.RFC3339, order.CreationDate)
	if err != nil {
		// An order whose creation date cannot be read is unusable as a
		// whole; sale_date is required.
		return nil, len(order.LineItems)
	}

	var buyerName, buyerEmail *string
	if order.Buyer != nil {
		if order.Buyer.BuyerRegistrationAddress != nil && order.Buyer.BuyerRegistrationAddress.FullName != "" {
			name := order.Buyer.BuyerRegistrationAddress.FullName
			buyerName = &name
		} else if order.Buyer.Username != "" {
			name := order.Buyer.Username
			buyerName = &name
		}
		if order.Buyer.BuyerRegistrationAddress != nil && order.Buyer.BuyerRegistrationAddress.Email != "" {
			email := order.Buyer.BuyerRegistrationAddress.Email
			buyerEmail = &email
		}
	}

	shippingAddress := formatShippingAddress(order)

	for _, item := range order.LineItems {
		if item.LineItemCost == nil || item.LineItemCost.Value == "" {
			skipped++
			continue
		}

		price, err := decimal.NewFromString(item.LineItemCost.Value)
		if err != nil || price.IsNegative() {
			skipped++
			continue
		}

		currency := item.LineItemCost.Currency
		if currency == "" {
			currency = "USD"
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		sales = append(sales, &domain.Sale{
			Platform:        domain.PlatformEbay,
			OrderID:         order.OrderID,
			ItemID:          item.LineItemID,
			ItemTitle:       item.Title,
			Quantity:        quantity,
			UnitPrice:       price.Div(decimal.NewFromInt(int64(quantity))),
			Currency:        currency,
			BuyerName:       buyerName,
			BuyerEmail:      buyerEmail,
			SaleDate:        saleDate.UTC(),
			Status:          order.OrderFulfillmentStatus,
			ShippingAddress: shippingAddress,
		})
	}

	return sales, skipped
}

func formatShippingAddress(order Order) *string {
	for _, instruction := range order.FulfillmentStartInstructions {
		if instruction.ShippingStep == nil || instruction.ShippingStep.ShipTo == nil {
			continue
		}
		addr := instruction.ShippingStep.ShipTo.ContactAddress
		if addr == nil {
			continue
		}

		parts := make([]string, 0, 5)
		for _, part := range []string{addr.AddressLine1, addr.City, addr.StateOrProvince, addr.PostalCode, addr.CountryCode} {
			if part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) == 0 {
			continue
		}

		formatted := strings.Join(parts, ", ")
		return &formatted
	}

	return nil
}
