package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "revoked_token:"

type revokedTokenRepository struct {
	rdb redis.UniversalClient
	now func() time.Time
}

func newRevokedTokenRepository(rdb redis.UniversalClient) *revokedTokenRepository {
	return &revokedTokenRepository{
		rdb: rdb,
		now: time.Now,
	}
}

// Revoke keeps the token id until the token would have expired anyway.
func (r *revokedTokenRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	if err := r.rdb.Set(ctx, revokedTokenPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis set revoked token: %w", err)
	}
	return nil
}

func (r *revokedTokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.rdb.Get(ctx, revokedTokenPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get revoked token: %w", err)
	}
	return true, nil
}
