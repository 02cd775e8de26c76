package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/walletworks/ewallet_app/internal/apperrors"
	"github.com/walletworks/ewallet_app/internal/core/domain"
	portsrepo "github.com/walletworks/ewallet_app/internal/core/ports/repositories"
	"github.com/walletworks/ewallet_app/internal/models"
	"github.com/walletworks/ewallet_app/internal/utils/mapping"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepository
var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_xid, name, email, password_hash, wallet_enabled, api_token, email_verified, avatar_url, created_at, updated_at, deleted_at`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerXID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.WalletEnabled,
		&m.APIToken,
		&m.EmailVerified,
		&m.AvatarURL,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan customer row: %w", err)
	}
	d := mapping.ToDomainCustomer(m)
	return &d, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
        INSERT INTO customers (customer_xid, name, email, password_hash, wallet_enabled, api_token, email_verified, avatar_url, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerXID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.WalletEnabled,
		m.APIToken,
		m.EmailVerified,
		m.AvatarURL,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "customers_email_key") {
			return fmt.Errorf("email %s: %w", customer.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByXID(ctx context.Context, customerXID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_xid = $1 AND deleted_at IS NULL;`
	customer, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerXID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find customer by xid %s: %w", customerXID, err)
	}
	return customer, nil
}

func (r *PgxCustomerRepository) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1 AND deleted_at IS NULL;`
	customer, err := scanCustomer(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find customer by email: %w", err)
	}
	return customer, nil
}

func (r *PgxCustomerRepository) FindCustomerByToken(ctx context.Context, token string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE api_token = $1 AND deleted_at IS NULL;`
	customer, err := scanCustomer(r.Pool.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find customer by token: %w", err)
	}
	return customer, nil
}

func (r *PgxCustomerRepository) UpdateAPIToken(ctx context.Context, customerXID string, token string) error {
	query := `
        UPDATE customers
        SET api_token = $1, updated_at = now()
        WHERE customer_xid = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, token, customerXID)
	if err != nil {
		return fmt.Errorf("failed to update api token for customer %s: %w", customerXID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCustomerRepository) SetWalletEnabled(ctx context.Context, customerXID string, enabled bool) error {
	query := `
        UPDATE customers
        SET wallet_enabled = $1, updated_at = now()
        WHERE customer_xid = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, enabled, customerXID)
	if err != nil {
		return fmt.Errorf("failed to set wallet_enabled for customer %s: %w", customerXID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
