package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/walletworks/ewallet_app/internal/apperrors"
	"github.com/walletworks/ewallet_app/internal/core/domain"
	portsrepo "github.com/walletworks/ewallet_app/internal/core/ports/repositories"
)

// LedgerRepository is a concurrency-safe in-memory ledger. A single mutex
// serializes all mutations, which is the embedded-store substitute for the
// per-customer row lock the Postgres implementation takes.
type LedgerRepository struct {
	mu        sync.RWMutex
	customers portsrepo.CustomerRepository // consulted for the wallet flag under the lock
	nextID    int64
	entries   []domain.Transaction
	refs      map[string]struct{}
	balances  map[string]decimal.Decimal
}

func NewLedgerRepository(customers portsrepo.CustomerRepository) *LedgerRepository {
	return &LedgerRepository{
		customers: customers,
		nextID:    1,
		refs:      make(map[string]struct{}),
		balances:  make(map[string]decimal.Decimal),
	}
}

var _ portsrepo.LedgerRepository = (*LedgerRepository)(nil)

func (r *LedgerRepository) AppendTransaction(ctx context.Context, customerXID string, kind domain.TransactionKind, amount decimal.Decimal, referenceID string) (*domain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	customer, err := r.customers.FindCustomerByXID(ctx, customerXID)
	if err != nil {
		return nil, err
	}
	if !customer.WalletEnabled {
		return nil, apperrors.ErrWalletDisabled
	}

	// Failure precedence mirrors the Postgres store: the balance check runs
	// before the duplicate-reference check, which there only surfaces at
	// insert time.
	balance := r.balances[customerXID]
	if kind == domain.Withdrawal {
		if balance.LessThan(amount) {
			return nil, apperrors.ErrInsufficientBalance
		}
		balance = balance.Sub(amount)
	} else {
		balance = balance.Add(amount)
	}

	if _, exists := r.refs[referenceID]; exists {
		return nil, fmt.Errorf("reference_id %s: %w", referenceID, apperrors.ErrDuplicateReference)
	}

	txn := domain.Transaction{
		ID:          r.nextID,
		CustomerXID: customerXID,
		Kind:        kind,
		Amount:      amount,
		ReferenceID: referenceID,
		CreatedAt:   time.Now().UTC(),
	}
	r.nextID++
	r.entries = append(r.entries, txn)
	r.refs[referenceID] = struct{}{}
	r.balances[customerXID] = balance

	return &txn, nil
}

func (r *LedgerRepository) BalanceOf(_ context.Context, customerXID string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balances[customerXID], nil
}

func (r *LedgerRepository) TransactionsOf(_ context.Context, customerXID string) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// Entries are appended in id order; walk backwards for most-recent-first.
	out := []domain.Transaction{}
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].CustomerXID == customerXID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}
