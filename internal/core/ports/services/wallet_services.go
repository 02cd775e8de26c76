package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/walletworks/ewallet_app/internal/core/domain"
)

// WalletSvcFacade orchestrates wallet state and ledger operations for a
// resolved customer. The customer is always passed explicitly by XID; there
// is no ambient per-request state below the middleware.
type WalletSvcFacade interface {
	// Enable transitions Disabled -> Enabled.
	// Returns apperrors.ErrWalletAlreadyEnabled if already enabled.
	Enable(ctx context.Context, customerXID string) (*domain.Customer, error)

	// Disable sets enabled = !isDisabled unconditionally (no already-disabled
	// guard; asymmetric with Enable on purpose).
	Disable(ctx context.Context, customerXID string, isDisabled bool) (*domain.Customer, error)

	// Deposit and Withdraw require the wallet to be enabled at the moment of
	// the write and delegate to the ledger store's atomic append.
	Deposit(ctx context.Context, customerXID string, amount decimal.Decimal, referenceID string) (*domain.Transaction, error)
	Withdraw(ctx context.Context, customerXID string, amount decimal.Decimal, referenceID string) (*domain.Transaction, error)

	// Balance and Transactions are pure reads; no enabled-state requirement.
	Balance(ctx context.Context, customerXID string) (decimal.Decimal, error)
	Transactions(ctx context.Context, customerXID string) ([]domain.Transaction, error)
}
