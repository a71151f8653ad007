package swell

type ordersResponse struct {
	Count   int      `json:"count"`
	Page    int      `json:"page"`
	Results []*Order `json:"results"`
}

type Order struct {
	ID          string   `json:"id"`
	Number      string   `json:"number"`
	DateCreated string   `json:"date_created"`
	Status      string   `json:"status"`
	Currency    string   `json:"currency"`
	Account     *Account `json:"account"`
	Shipping    *Address `json:"shipping"`
	Items       []*Item  `json:"items"`
}

type Account struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Address struct {
	Name     string `json:"name"`
	Address1 string `json:"address1"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

type Item struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       *number `json:"price"`
}

// Swell serializes money as JSON numbers; number keeps the raw text so the
// normalizer can hand it to decimal without a float round trip.
type number string

func (n *number) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	*n = number(s)
	return nil
}

func (n *number) String() string {
	if n == nil {
		return ""
	}
	return string(*n)
}
