package auth

import (
	"context"
	"time"

	"portfolio/internal/cache"
)

const revokedTokenKeyPrefix = "revoked:session:"

// TokenStoreInterface defines the interface for token storage operations.
type TokenStoreInterface interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) bool
}

// TokenStore keeps revoked session token IDs in Redis until they would have expired anyway.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// Revoke marks a token ID as revoked for ttl. Non-positive ttls are ignored since the
// token is already expired.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, revokedTokenKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsRevoked checks if a token ID was revoked. Not revoked if redis is unreachable (fail safe).
func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) bool {
	return s.cache.Exists(ctx, revokedTokenKeyPrefix+tokenID)
}
