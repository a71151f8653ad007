package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SampleOrderPrefix tags order IDs generated in demo mode so a human reading
// raw rows can tell them apart. The authoritative marker is the IsSample
// column; the prefix is cosmetic.
const SampleOrderPrefix = "SAMPLE-"

// Sale is one normalized order line. The dedup identity is
// (user_id, platform, order_id, item_id): re-syncing the same line is a
// no-op insert, never an overwrite.
type Sale struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Platform        Platform        `json:"platform"`
	OrderID         string          `json:"order_id"`
	ItemID          string          `json:"item_id"`
	ItemTitle       string          `json:"item_title"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Currency        string          `json:"currency"`
	BuyerName       *string         `json:"buyer_name,omitempty"`
	BuyerEmail      *string         `json:"buyer_email,omitempty"`
	SaleDate        time.Time       `json:"sale_date"`
	Status          string          `json:"status"`
	ShippingAddress *string         `json:"shipping_address,omitempty"`
	TrackingNumber  *string         `json:"tracking_number,omitempty"`
	IsSample        bool            `json:"is_sample"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Revenue is the line total (unit price times quantity).
func (s *Sale) Revenue() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// SaleFilter is the one typed filter shared by the sales listing and the
// analytics queries, so filter semantics are defined in a single place.
type SaleFilter struct {
	Platform  *Platform
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
}

// DateRange bounds a sync or analytics window. End is inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// LastDays builds the default bounded sync window ending now.
func LastDays(days int, now time.Time) DateRange {
	return DateRange{
		Start: now.AddDate(0, 0, -days),
		End:   now,
	}
}
