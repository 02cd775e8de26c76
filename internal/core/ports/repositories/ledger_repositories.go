package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/walletworks/ewallet_app/internal/core/domain"
)

// LedgerRepository defines the append-only transaction log and balance reads.
//
// Implementations must serialize AppendTransaction per customer: the balance
// check for withdrawals and the wallet-enabled check happen atomically with
// the insert, so two concurrent withdrawals can never jointly overdraw.
type LedgerRepository interface {
	// AppendTransaction records a deposit or withdrawal.
	// Failure modes: apperrors.ErrValidation (amount <= 0),
	// apperrors.ErrDuplicateReference (referenceID exists anywhere in the log),
	// apperrors.ErrWalletDisabled (wallet flag false at the moment of the write),
	// apperrors.ErrInsufficientBalance (withdrawal exceeds derived balance),
	// apperrors.ErrNotFound (unknown customer).
	AppendTransaction(ctx context.Context, customerXID string, kind domain.TransactionKind, amount decimal.Decimal, referenceID string) (*domain.Transaction, error)

	// BalanceOf derives sum(deposits) - sum(withdrawals) from a single consistent snapshot.
	BalanceOf(ctx context.Context, customerXID string) (decimal.Decimal, error)

	// TransactionsOf returns the customer's transactions, most recent first
	// (created_at desc, insertion order desc as the tie-break).
	TransactionsOf(ctx context.Context, customerXID string) ([]domain.Transaction, error)
}
