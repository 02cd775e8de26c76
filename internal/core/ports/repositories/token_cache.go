package repositories

import "context"

// TokenCache is an optional read-through cache mapping bearer tokens to
// customer XIDs. Cache misses and cache errors are both non-fatal: callers
// fall back to the repository.
type TokenCache interface {
	Get(ctx context.Context, token string) (string, bool)
	Set(ctx context.Context, token string, customerXID string)
	Invalidate(ctx context.Context, token string)
}
