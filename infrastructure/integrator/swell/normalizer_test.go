package swell

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketpulse/marketpulse-api/internal/domain"
)

func TestNormalizeOrder(t *testing.T) {
	var order Order
	raw := `{
		"id": "ord_abc123",
		"number": "10042",
		"date_created": "2024-06-12T09:00:00Z",
		"status": "complete",
		"currency": "USD",
		"account": {"name": "Freya Lundqvist", "email": "freya@example.com"},
		"items": [
			{"id": "it_1", "product_name": "Organic Cotton T-Shirt", "quantity": 2, "price": 28},
			{"id": "it_2", "product_name": "Free Sticker", "quantity": 1, "price": null}
		]
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), &order))

	sales, skipped := NormalizeOrder(&order)

	require.Len(t, sales, 1)
	assert.Equal(t, 1, skipped)

	sale := sales[0]
	assert.Equal(t, domain.PlatformSwell, sale.Platform)
	assert.Equal(t, "10042", sale.OrderID) // prefers the human order number
	assert.Equal(t, "it_1", sale.ItemID)
	assert.Equal(t, "28", sale.UnitPrice.String())
	assert.Equal(t, 2, sale.Quantity)
	require.NotNil(t, sale.BuyerEmail)
	assert.Equal(t, "freya@example.com", *sale.BuyerEmail)
}

func TestNormalizeOrderDecimalPrice(t *testing.T) {
	var order Order
	raw := `{
		"id": "ord_x",
		"date_created": "2024-06-12T09:00:00Z",
		"items": [{"id": "it_1", "product_name": "Candle", "quantity": 1, "price": 14.25}]
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), &order))

	sales, skipped := NormalizeOrder(&order)

	require.Len(t, sales, 1)
	assert.Zero(t, skipped)
	assert.Equal(t, "ord_x", sales[0].OrderID) // falls back to the id
	assert.Equal(t, "14.25", sales[0].UnitPrice.String())
	assert.Equal(t, "USD", sales[0].Currency)
}
