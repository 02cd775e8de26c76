package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/walletworks/ewallet_app/internal/apperrors"
	"github.com/walletworks/ewallet_app/internal/core/domain"
	portsrepo "github.com/walletworks/ewallet_app/internal/core/ports/repositories"
	"github.com/walletworks/ewallet_app/internal/models"
	"github.com/walletworks/ewallet_app/internal/utils/mapping"
)

// PgxLedgerRepository persists the append-only wallet ledger.
//
// AppendTransaction serializes all ledger mutations for one customer by
// taking a FOR UPDATE lock on the customer row inside a single database
// transaction. The wallet-enabled check and, for withdrawals, the derived
// balance check therefore see the committed state as of the lock, and no
// two concurrent withdrawals can jointly overdraw. Duplicate reference ids
// are rejected by the unique index at insert time, never by a prior read.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

const balanceQuery = `
    SELECT COALESCE(SUM(CASE WHEN kind = 'deposit' THEN amount ELSE -amount END), 0)
    FROM wallet_transactions
    WHERE customer_xid = $1;
`

func (r *PgxLedgerRepository) AppendTransaction(ctx context.Context, customerXID string, kind domain.TransactionKind, amount decimal.Decimal, referenceID string) (*domain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	// Lock the owning customer row; this serializes ledger writes per customer.
	var walletEnabled bool
	err = tx.QueryRow(ctx, `SELECT wallet_enabled FROM customers WHERE customer_xid = $1 AND deleted_at IS NULL FOR UPDATE`, customerXID).Scan(&walletEnabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock customer row", err)
	}
	if !walletEnabled {
		return nil, apperrors.ErrWalletDisabled
	}

	if kind == domain.Withdrawal {
		var balance decimal.Decimal
		if err := tx.QueryRow(ctx, balanceQuery, customerXID).Scan(&balance); err != nil {
			return nil, apperrors.NewAppError(500, "failed to derive balance", err)
		}
		if balance.LessThan(amount) {
			return nil, apperrors.ErrInsufficientBalance
		}
	}

	var m models.Transaction
	insertQuery := `
        INSERT INTO wallet_transactions (customer_xid, kind, amount, reference_id, created_at)
        VALUES ($1, $2, $3, $4, now())
        RETURNING id, customer_xid, kind, amount, reference_id, created_at;
    `
	err = tx.QueryRow(ctx, insertQuery, customerXID, string(kind), amount, referenceID).Scan(
		&m.ID,
		&m.CustomerXID,
		&m.Kind,
		&m.Amount,
		&m.ReferenceID,
		&m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "wallet_transactions_reference_id_key") {
			return nil, fmt.Errorf("reference_id %s: %w", referenceID, apperrors.ErrDuplicateReference)
		}
		return nil, apperrors.NewAppError(500, "failed to insert transaction", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

func (r *PgxLedgerRepository) BalanceOf(ctx context.Context, customerXID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, balanceQuery, customerXID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to derive balance for customer %s: %w", customerXID, err)
	}
	return balance, nil
}

func (r *PgxLedgerRepository) TransactionsOf(ctx context.Context, customerXID string) ([]domain.Transaction, error) {
	query := `
        SELECT id, customer_xid, kind, amount, reference_id, created_at
        FROM wallet_transactions
        WHERE customer_xid = $1
        ORDER BY created_at DESC, id DESC;
    `
	rows, err := r.Pool.Query(ctx, query, customerXID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.ID, &m.CustomerXID, &m.Kind, &m.Amount, &m.ReferenceID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}
