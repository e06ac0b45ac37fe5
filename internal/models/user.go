package models

import (
	"time"
)

// User represents an account record in the external identity store.
// The archive never creates or deletes users; it only refreshes the
// cached display name and avatar from the identity provider.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Image     string    `json:"image,omitempty" db:"image"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Account holds provider credentials for a linked OAuth account,
// keyed by provider + provider account id.
type Account struct {
	UserID            string `json:"user_id" db:"user_id"`
	Provider          string `json:"provider" db:"provider"`
	ProviderAccountID string `json:"provider_account_id" db:"provider_account_id"`
	AccessToken       string `json:"-" db:"access_token"`
	RefreshToken      string `json:"-" db:"refresh_token"`
	ExpiresAt         int64  `json:"expires_at" db:"expires_at"`
}
