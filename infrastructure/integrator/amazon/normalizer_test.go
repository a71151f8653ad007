package amazon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketpulse/marketpulse-api/internal/domain"
)

func TestNormalizeOrder(t *testing.T) {
	order := &Order{
		AmazonOrderID: "111-2222222-3333333",
		PurchaseDate:  "2024-06-05T08:15:00Z",
		OrderStatus:   "Shipped",
		BuyerInfo:     &Buyer{BuyerName: "Hannah Price", BuyerEmail: "hannah@example.com"},
		ShippingAddress: &Address{
			AddressLine1:  "9 Oak Ave",
			City:          "Austin",
			StateOrRegion: "TX",
			PostalCode:    "78701",
			CountryCode:   "US",
		},
	}
	items := []*OrderItem{
		{
			OrderItemID:     "oi-1",
			Title:           "Water Bottle 32oz",
			QuantityOrdered: 2,
			// ItemPrice is the line total on SP-API
			ItemPrice: &Money{Amount: "43.98", CurrencyCode: "USD"},
		},
		{
			OrderItemID:     "oi-2",
			Title:           "Item Without Price",
			QuantityOrdered: 1,
		},
	}

	sales, skipped := NormalizeOrder(order, items)

	require.Len(t, sales, 1)
	assert.Equal(t, 1, skipped)

	sale := sales[0]
	assert.Equal(t, domain.PlatformAmazon, sale.Platform)
	assert.Equal(t, "111-2222222-3333333", sale.OrderID)
	assert.Equal(t, "oi-1", sale.ItemID)
	assert.Equal(t, "21.99", sale.UnitPrice.String())
	assert.Equal(t, "Shipped", sale.Status)
	require.NotNil(t, sale.ShippingAddress)
	assert.Equal(t, "9 Oak Ave, Austin, TX, 78701, US", *sale.ShippingAddress)
}

func TestNormalizeOrderBadPurchaseDate(t *testing.T) {
	order := &Order{AmazonOrderID: "bad", PurchaseDate: "05/06/2024"}
	items := []*OrderItem{
		{OrderItemID: "oi-1", ItemPrice: &Money{Amount: "5.00"}},
	}

	sales, skipped := NormalizeOrder(order, items)

	assert.Empty(t, sales)
	assert.Equal(t, 1, skipped)
}
