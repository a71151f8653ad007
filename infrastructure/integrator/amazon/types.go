package amazon

// SP-API responses wrap the body in a "payload" object.

type ordersResponse struct {
	Payload ordersPayload `json:"payload"`
}

type ordersPayload struct {
	Orders    []*Order `json:"Orders"`
	NextToken string   `json:"NextToken"`
}

type Order struct {
	AmazonOrderID   string   `json:"AmazonOrderId"`
	PurchaseDate    string   `json:"PurchaseDate"`
	OrderStatus     string   `json:"OrderStatus"`
	BuyerInfo       *Buyer   `json:"BuyerInfo"`
	ShippingAddress *Address `json:"ShippingAddress"`
}

type Buyer struct {
	BuyerEmail string `json:"BuyerEmail"`
	BuyerName  string `json:"BuyerName"`
}

type Address struct {
	Name          string `json:"Name"`
	AddressLine1  string `json:"AddressLine1"`
	City          string `json:"City"`
	StateOrRegion string `json:"StateOrRegion"`
	PostalCode    string `json:"PostalCode"`
	CountryCode   string `json:"CountryCode"`
}

type orderItemsResponse struct {
	Payload orderItemsPayload `json:"payload"`
}

type orderItemsPayload struct {
	OrderItems []*OrderItem `json:"OrderItems"`
	NextToken  string       `json:"NextToken"`
}

type OrderItem struct {
	OrderItemID     string `json:"OrderItemId"`
	Title           string `json:"Title"`
	QuantityOrdered int    `json:"QuantityOrdered"`
	ItemPrice       *Money `json:"ItemPrice"`
}

type Money struct {
	Amount       string `json:"Amount"`
	CurrencyCode string `json:"CurrencyCode"`
}

// tokenResponse is the LWA (Login with Amazon) token payload.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}
