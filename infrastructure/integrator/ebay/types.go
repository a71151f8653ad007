package ebay

// Wire shapes of the eBay Fulfillment API getOrders endpoint.

type ordersResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
	Next   string  `json:"next"`
}

type Order struct {
	OrderID                      string                   `json:"orderId"`
	CreationDate                 string                   `json:"creationDate"`
	OrderFulfillmentStatus       string                   `json:"orderFulfillmentStatus"`
	Buyer                        *Buyer                   `json:"buyer"`
	LineItems                    []LineItem               `json:"lineItems"`
	FulfillmentStartInstructions []FulfillmentInstruction `json:"fulfillmentStartInstructions"`
}

type Buyer struct {
	Username                 string   `json:"username"`
	BuyerRegistrationAddress *Contact `json:"buyerRegistrationAddress"`
}

type Contact struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type LineItem struct {
	LineItemID   string  `json:"lineItemId"`
	LegacyItemID string  `json:"legacyItemId"`
	Title        string  `json:"title"`
	Quantity     int     `json:"quantity"`
	LineItemCost *Amount `json:"lineItemCost"`
}

type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type FulfillmentInstruction struct {
	ShippingStep *ShippingStep `json:"shippingStep"`
}

type ShippingStep struct {
	ShipTo *ShipTo `json:"shipTo"`
}

type ShipTo struct {
	ContactAddress *ContactAddress `json:"contactAddress"`
}

type ContactAddress struct {
	AddressLine1    string `json:"addressLine1"`
	City            string `json:"city"`
	StateOrProvince string `json:"stateOrProvince"`
	PostalCode      string `json:"postalCode"`
	CountryCode     string `json:"countryCode"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
