package services

import (
	"context"

	"github.com/walletworks/ewallet_app/internal/core/domain"
	"github.com/walletworks/ewallet_app/internal/dto"
)

// CustomerSvcFacade exposes customer identity operations to handlers.
type CustomerSvcFacade interface {
	// CreateCustomer registers a new customer with wallet disabled and no token.
	// Returns apperrors.ErrValidation for malformed input and
	// apperrors.ErrDuplicate when the email is already registered.
	CreateCustomer(ctx context.Context, req dto.SignupRequest) (*domain.Customer, error)

	// FindOrCreateOAuthCustomer resolves a customer by verified OAuth profile,
	// creating one on first sign-in. OAuth customers have no password.
	FindOrCreateOAuthCustomer(ctx context.Context, name, email string, emailVerified bool, avatarURL string) (*domain.Customer, error)
}
