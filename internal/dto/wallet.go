package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/walletworks/ewallet_app/internal/core/domain"
)

// LedgerEntryRequest defines the body for deposits and withdrawals.
// Amount positivity is enforced by the service/store, not the binding,
// so the caller gets the ledger's own validation error.
type LedgerEntryRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	ReferenceID string          `json:"reference_id" binding:"required,notblank"`
}

// DisableWalletRequest defines the body for PATCH /v1/wallet.
// Pointer so an explicit false still satisfies the required binding.
type DisableWalletRequest struct {
	IsDisabled *bool `json:"is_disabled" binding:"required"`
}

// BalanceResponse carries the derived wallet balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// WalletStatusResponse reports the wallet flag after enable/disable.
type WalletStatusResponse struct {
	CustomerXID   string `json:"customer_xid"`
	WalletEnabled bool   `json:"wallet_enabled"`
}

// TransactionResponse is one ledger entry as returned by the history endpoint.
type TransactionResponse struct {
	ID          int64           `json:"id"`
	Kind        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	ReferenceID string          `json:"reference_id"`
	CreatedAt   string          `json:"created_at"`
}

// TransactionsResponse wraps the history list.
type TransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		Kind:        string(txn.Kind),
		Amount:      txn.Amount,
		ReferenceID: txn.ReferenceID,
		CreatedAt:   txn.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToTransactionsResponse converts a slice of domain transactions.
func ToTransactionsResponse(txns []domain.Transaction) TransactionsResponse {
	out := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = ToTransactionResponse(txn)
	}
	return TransactionsResponse{Transactions: out}
}
