package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/walletworks/ewallet_app/internal/apperrors"
	"github.com/walletworks/ewallet_app/internal/core/domain"
	portsrepo "github.com/walletworks/ewallet_app/internal/core/ports/repositories"
	portssvc "github.com/walletworks/ewallet_app/internal/core/ports/services"
	"github.com/walletworks/ewallet_app/internal/utils"
)

// tokenBytes yields a 42-character hex token, matching the credential length
// the service has always issued.
const tokenBytes = 21

// tokenService issues and resolves opaque bearer tokens. Tokens are stored
// verbatim on the customer row (the resolve contract is an exact string
// lookup); an optional cache fronts the lookup. Tokens do not expire.
type tokenService struct {
	customerRepo portsrepo.CustomerRepository
	cache        portsrepo.TokenCache // may be nil
}

// NewTokenService creates a new TokenService. cache may be nil.
func NewTokenService(customerRepo portsrepo.CustomerRepository, cache portsrepo.TokenCache) portssvc.TokenSvcFacade {
	return &tokenService{customerRepo: customerRepo, cache: cache}
}

// Ensure tokenService implements the portssvc.TokenSvcFacade interface
var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) IssueToken(ctx context.Context, customerXID string) (string, error) {
	customer, err := s.customerRepo.FindCustomerByXID(ctx, customerXID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to find customer for token issue: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(tokenBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.customerRepo.UpdateAPIToken(ctx, customerXID, token); err != nil {
		return "", fmt.Errorf("failed to persist token: %w", err)
	}

	if s.cache != nil {
		if customer.APIToken != nil {
			s.cache.Invalidate(ctx, *customer.APIToken)
		}
		s.cache.Set(ctx, token, customerXID)
	}

	return token, nil
}

func (s *tokenService) ResolveToken(ctx context.Context, token string) (*domain.Customer, error) {
	if token == "" {
		return nil, apperrors.ErrNotFound
	}

	if s.cache != nil {
		if xid, ok := s.cache.Get(ctx, token); ok {
			customer, err := s.customerRepo.FindCustomerByXID(ctx, xid)
			// Guard against a stale cache entry surviving a rotation.
			if err == nil && customer.APIToken != nil && *customer.APIToken == token {
				return customer, nil
			}
			s.cache.Invalidate(ctx, token)
		}
	}

	customer, err := s.customerRepo.FindCustomerByToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, token, customer.CustomerXID)
	}
	return customer, nil
}
