package etsy

// Wire shapes of the Etsy Open API v3 receipts endpoint. Only the fields the
// normalizer consumes are declared.

type receiptsResponse struct {
	Count   int       `json:"count"`
	Results []Receipt `json:"results"`
}

type Receipt struct {
	ReceiptID       int64         `json:"receipt_id"`
	Status          string        `json:"status"`
	Name            string        `json:"name"`
	BuyerEmail      *string       `json:"buyer_email"`
	FormattedAddress *string      `json:"formatted_address"`
	CreateTimestamp int64         `json:"create_timestamp"`
	Transactions    []Transaction `json:"transactions"`
	Shipments       []Shipment    `json:"shipments"`
}

type Transaction struct {
	TransactionID int64  `json:"transaction_id"`
	Title         string `json:"title"`
	ListingID     int64  `json:"listing_id"`
	Quantity      int    `json:"quantity"`
	Price         *Money `json:"price"`
}

type Shipment struct {
	TrackingCode *string `json:"tracking_code"`
}

// Money is Etsy's fixed-point money representation: amount in the currency's
// smallest unit plus a divisor.
type Money struct {
	Amount       int64  `json:"amount"`
	Divisor      int64  `json:"divisor"`
	CurrencyCode string `json:"currency_code"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}
