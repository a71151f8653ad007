package domain

import "time"

// Credential is one marketplace connection belonging to a user. At most one
// credential per (user_id, platform) is active; reconnecting deactivates the
// previous row instead of deleting it so the audit trail survives.
type Credential struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Platform     Platform   `json:"platform"`
	StoreID      *string    `json:"store_id,omitempty"`
	StoreName    *string    `json:"store_name,omitempty"`
	StoreURL     *string    `json:"store_url,omitempty"`
	APIKey       *string    `json:"-"`
	APISecret    *string    `json:"-"`
	AccessToken  *string    `json:"-"`
	RefreshToken *string    `json:"-"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Expired reports whether the access token needs a refresh before use.
// Credentials without an expiry (plain API key pairs) never expire.
func (c *Credential) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !c.ExpiresAt.After(now)
}

// CredentialFields carries the connection data produced by a successful
// connect-test or OAuth code exchange, before a credential row exists.
type CredentialFields struct {
	StoreID      *string
	StoreName    *string
	StoreURL     *string
	APIKey       *string
	APISecret    *string
	AccessToken  *string
	RefreshToken *string
	ExpiresAt    *time.Time
}

// TokenPair is the outcome of one refresh call against a platform.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}
