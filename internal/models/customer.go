package models

import (
	"database/sql"
	"time"
)

// Customer mirrors the customers table.
type Customer struct {
	CustomerXID   string
	Name          string
	Email         string
	PasswordHash  sql.NullString
	WalletEnabled bool
	APIToken      sql.NullString
	EmailVerified bool
	AvatarURL     sql.NullString
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}
