package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/walletworks/ewallet_app/internal/apperrors"
	"github.com/walletworks/ewallet_app/internal/core/domain"
	portsrepo "github.com/walletworks/ewallet_app/internal/core/ports/repositories"
)

// CustomerRepository is a concurrency-safe in-memory customer store useful
// for unit tests and local development without Postgres.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]domain.Customer // keyed by customer_xid
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: make(map[string]domain.Customer)}
}

var _ portsrepo.CustomerRepository = (*CustomerRepository)(nil)

func (r *CustomerRepository) SaveCustomer(_ context.Context, customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.customers {
		if existing.Email == customer.Email {
			return fmt.Errorf("email %s: %w", customer.Email, apperrors.ErrDuplicate)
		}
	}
	r.customers[customer.CustomerXID] = customer
	return nil
}

func (r *CustomerRepository) FindCustomerByXID(_ context.Context, customerXID string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.customers[customerXID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &customer, nil
}

func (r *CustomerRepository) FindCustomerByEmail(_ context.Context, email string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, customer := range r.customers {
		if customer.Email == email {
			c := customer
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *CustomerRepository) FindCustomerByToken(_ context.Context, token string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, customer := range r.customers {
		if customer.APIToken != nil && *customer.APIToken == token {
			c := customer
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *CustomerRepository) UpdateAPIToken(_ context.Context, customerXID string, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	customer, ok := r.customers[customerXID]
	if !ok {
		return apperrors.ErrNotFound
	}
	customer.APIToken = &token
	r.customers[customerXID] = customer
	return nil
}

func (r *CustomerRepository) SetWalletEnabled(_ context.Context, customerXID string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	customer, ok := r.customers[customerXID]
	if !ok {
		return apperrors.ErrNotFound
	}
	customer.WalletEnabled = enabled
	r.customers[customerXID] = customer
	return nil
}
