package domain

import "time"

// Customer represents a wallet owner in the core domain.
// This is the primary representation used by services.
type Customer struct {
	CustomerXID   string     `json:"customer_xid"` // Stable external identifier (UUID)
	Name          string     `json:"name"`
	Email         string     `json:"email"` // Unique
	PasswordHash  string     `json:"-"`     // Never expose the hash in JSON responses
	WalletEnabled bool       `json:"wallet_enabled"`
	APIToken      *string    `json:"-"` // Opaque bearer token; nil until /init
	EmailVerified bool       `json:"email_verified"`
	AvatarURL     string     `json:"avatar_url,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"-"`
}
