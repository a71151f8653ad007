package etsy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketpulse/marketpulse-api/internal/domain"
)

func TestNormalizeReceipt(t *testing.T) {
	buyerEmail := "ava@example.com"
	address := "12 Main St, Portland, OR"

	receipt := Receipt{
		ReceiptID:        1234567,
		Status:           "Paid",
		Name:             "Ava Thompson",
		BuyerEmail:       &buyerEmail,
		FormattedAddress: &address,
		CreateTimestamp:  1717200000, // 2024-06-01T00:00:00Z
		Transactions: []Transaction{
			{
				TransactionID: 111,
				Title:         "Handmade Ceramic Mug",
				Quantity:      2,
				Price:         &Money{Amount: 2450, Divisor: 100, CurrencyCode: "USD"},
			},
			{
				TransactionID: 222,
				Title:         "Broken Listing",
				Quantity:      1,
				Price:         nil, // must be skipped, not zero-filled
			},
		},
	}

	sales, skipped := NormalizeReceipt(receipt)

	require.Len(t, sales, 1)
	assert.Equal(t, 1, skipped)

	sale := sales[0]
	assert.Equal(t, domain.PlatformEtsy, sale.Platform)
	assert.Equal(t, "1234567", sale.OrderID)
	assert.Equal(t, "111", sale.ItemID)
	assert.Equal(t, "Handmade Ceramic Mug", sale.ItemTitle)
	assert.Equal(t, 2, sale.Quantity)
	assert.Equal(t, "24.5", sale.UnitPrice.String())
	assert.Equal(t, "USD", sale.Currency)
	require.NotNil(t, sale.BuyerName)
	assert.Equal(t, "Ava Thompson", *sale.BuyerName)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), sale.SaleDate)
	assert.False(t, sale.IsSample)
}

func TestNormalizeReceiptZeroDivisor(t *testing.T) {
	receipt := Receipt{
		ReceiptID:       99,
		CreateTimestamp: 1717200000,
		Transactions: []Transaction{
			{TransactionID: 1, Price: &Money{Amount: 100, Divisor: 0}},
		},
	}

	sales, skipped := NormalizeReceipt(receipt)

	assert.Empty(t, sales)
	assert.Equal(t, 1, skipped)
}

func TestNormalizeReceiptDefaults(t *testing.T) {
	receipt := Receipt{
		ReceiptID:       42,
		CreateTimestamp: 1717200000,
		Transactions: []Transaction{
			{
				TransactionID: 1,
				Title:         "Print Set",
				Quantity:      0, // quantity below one normalizes to one
				Price:         &Money{Amount: 1999, Divisor: 100},
			},
		},
	}

	sales, skipped := NormalizeReceipt(receipt)

	require.Len(t, sales, 1)
	assert.Zero(t, skipped)
	assert.Equal(t, 1, sales[0].Quantity)
	assert.Equal(t, "USD", sales[0].Currency)
	assert.Nil(t, sales[0].BuyerName)
}
