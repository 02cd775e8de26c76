package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the wallet_transactions table.
type Transaction struct {
	ID          int64
	CustomerXID string
	Kind        string
	Amount      decimal.Decimal
	ReferenceID string
	CreatedAt   time.Time
}
