package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a ledger entry adds to or removes from the balance.
type TransactionKind string

const (
	Deposit    TransactionKind = "deposit"
	Withdrawal TransactionKind = "withdrawal"
)

// Transaction is a single immutable entry in the append-only wallet ledger.
type Transaction struct {
	ID          int64           `json:"id"` // Monotonically increasing per the ledger sequence
	CustomerXID string          `json:"customer_xid"`
	Kind        TransactionKind `json:"type"`
	Amount      decimal.Decimal `json:"amount"`       // Positive value; precise decimal type
	ReferenceID string          `json:"reference_id"` // Caller-supplied idempotency key, globally unique
	CreatedAt   time.Time       `json:"created_at"`
}
