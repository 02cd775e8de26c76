package repositories

import (
	"context"

	"github.com/walletworks/ewallet_app/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	// SaveCustomer inserts a new customer. Returns apperrors.ErrDuplicate when
	// the email is already registered (enforced by a unique index, not a
	// read-then-write check).
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// FindCustomerByXID returns apperrors.ErrNotFound when no customer matches.
	FindCustomerByXID(ctx context.Context, customerXID string) (*domain.Customer, error)

	// FindCustomerByEmail returns apperrors.ErrNotFound when no customer matches.
	FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)

	// FindCustomerByToken looks up the customer holding this exact token string.
	FindCustomerByToken(ctx context.Context, token string) (*domain.Customer, error)

	// UpdateAPIToken overwrites the customer's token (single active token per customer).
	UpdateAPIToken(ctx context.Context, customerXID string, token string) error

	// SetWalletEnabled writes the wallet flag. Idempotent; no error if already in that state.
	SetWalletEnabled(ctx context.Context, customerXID string, enabled bool) error
}
