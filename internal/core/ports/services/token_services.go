package services

import (
	"context"

	"github.com/walletworks/ewallet_app/internal/core/domain"
)

// TokenSvcFacade issues and resolves the opaque bearer tokens used by the
// wallet endpoints. A customer holds at most one active token; issuing a new
// one overwrites the previous.
type TokenSvcFacade interface {
	IssueToken(ctx context.Context, customerXID string) (string, error)

	// ResolveToken returns apperrors.ErrNotFound when no customer holds the
	// exact token string. Callers map that to an authentication failure.
	ResolveToken(ctx context.Context, token string) (*domain.Customer, error)
}
