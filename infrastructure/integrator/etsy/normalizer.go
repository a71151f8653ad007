package etsy

import (
	"strconv"
	"time"

	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/shopspring/decimal"
)

// NormalizeReceipt maps one Etsy receipt into canonical sales, one per
// transaction. Pure: no I/O, no side effects. A transaction without a price
// is a data integrity error and is skipped, never zero-filled; the skipped
// count lets the caller log it.
func NormalizeReceipt(receipt Receipt) ([]*domain.Sale, int) {
	sales := make([]*domain.Sale, 0, len(receipt.Transactions))
	skipped := 0

	orderID := strconv.FormatInt(receipt.ReceiptID, 10)
	saleDate := time.Unix(receipt.CreateTimestamp, 0).UTC()

	var buyerName *string
	if receipt.Name != "" {
		name := receipt.Name
		buyerName = &name
	}

	var tracking *string
	if len(receipt.Shipments) > 0 {
		tracking = receipt.Shipments[0].TrackingCode
	}

	for _, tx := range receipt.Transactions {
		if tx.Price == nil || tx.Price.Divisor == 0 {
			skipped++
			continue
		}

		price := decimal.New(tx.Price.Amount, 0).Div(decimal.New(tx.Price.Divisor, 0))

		currency := tx.Price.CurrencyCode
		if currency == "" {
			currency = "USD"
		}

		quantity := tx.Quantity
		if quantity < 1 {
			quantity = 1
		}

		sales = append(sales, &domain.Sale{
			Platform:        domain.PlatformEtsy,
			OrderID:         orderID,
			ItemID:          strconv.FormatInt(tx.TransactionID, 10),
			ItemTitle:       tx.Title,
			Quantity:        quantity,
			UnitPrice:       price,
			Currency:        currency,
			BuyerName:       buyerName,
			BuyerEmail:      receipt.BuyerEmail,
			SaleDate:        saleDate,
			Status:          receipt.Status,
			ShippingAddress: receipt.FormattedAddress,
			TrackingNumber:  tracking,
		})
	}

	return sales, skipped
}
