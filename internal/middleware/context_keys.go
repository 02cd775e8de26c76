package middleware

import (
	"context"

	"github.com/walletworks/ewallet_app/internal/core/domain"
)

// customerCtxKey is the key under which the authenticated customer is stored
// in the request context.
const customerCtxKey = contextKey("customer")

// GetCustomerFromCtx retrieves the authenticated customer resolved by the
// auth middleware. The customer is passed explicitly from here on; nothing
// below the middleware reads ambient auth state.
func GetCustomerFromCtx(ctx context.Context) (*domain.Customer, bool) {
	customer, ok := ctx.Value(customerCtxKey).(*domain.Customer)
	return customer, ok
}

// withCustomer returns a context carrying the resolved customer.
func withCustomer(ctx context.Context, customer *domain.Customer) context.Context {
	return context.WithValue(ctx, customerCtxKey, customer)
}
