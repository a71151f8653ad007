package ebay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketpulse/marketpulse-api/internal/domain"
)

func TestNormalizeOrder(t *testing.T) {
	order := Order{
		OrderID:                "11-22222-33333",
		CreationDate:           "2024-06-10T14:30:00Z",
		OrderFulfillmentStatus: "FULFILLED",
		Buyer: &Buyer{
			Username: "gracem",
			BuyerRegistrationAddress: &Contact{
				FullName: "Grace Miller",
				Email:    "grace@example.com",
			},
		},
		LineItems: []LineItem{
			{
				LineItemID: "li-1",
				Title:      "Wireless Headphones",
				Quantity:   2,
				// lineItemCost is the line total; unit price divides it out
				LineItemCost: &Amount{Value: "179.98", Currency: "USD"},
			},
			{
				LineItemID:   "li-2",
				Title:        "No Cost Item",
				Quantity:     1,
				LineItemCost: nil,
			},
		},
	}

	sales, skipped := NormalizeOrder(order)

	require.Len(t, sales, 1)
	assert.Equal(t, 1, skipped)

	sale := sales[0]
	assert.Equal(t, domain.PlatformEbay, sale.Platform)
	assert.Equal(t, "11-22222-33333", sale.OrderID)
	assert.Equal(t, "li-1", sale.ItemID)
	assert.Equal(t, "89.99", sale.UnitPrice.String())
	require.NotNil(t, sale.BuyerName)
	assert.Equal(t, "Grace Miller", *sale.BuyerName)
	require.NotNil(t, sale.BuyerEmail)
	assert.Equal(t, "grace@example.com", *sale.BuyerEmail)
	assert.Equal(t, "FULFILLED", sale.Status)
}

func TestNormalizeOrderBadCreationDate(t *testing.T) {
	order := Order{
		OrderID:      "bad-date",
		CreationDate: "not-a-date",
		LineItems: []LineItem{
			{LineItemID: "li-1", LineItemCost: &Amount{Value: "10.00"}},
			{LineItemID: "li-2", LineItemCost: &Amount{Value: "20.00"}},
		},
	}

	sales, skipped := NormalizeOrder(order)

	assert.Empty(t, sales)
	assert.Equal(t, 2, skipped)
}

func TestNormalizeOrderNegativeCost(t *testing.T) {
	order := Order{
		OrderID:      "neg",
		CreationDate: "2024-06-10T14:30:00Z",
		LineItems: []LineItem{
			{LineItemID: "li-1", Quantity: 1, LineItemCost: &Amount{Value: "-5.00"}},
		},
	}

	sales, skipped := NormalizeOrder(order)

	assert.Empty(t, sales)
	assert.Equal(t, 1, skipped)
}
