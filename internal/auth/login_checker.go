package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// Check returns the login session behind the token, or ErrSessionNotFound / ErrSessionExpired.
func (lc *LoginChecker) Check(ctx context.Context, token string) (*LoginSession, error) {
	return readSession(ctx, lc.redisClient, token, lc.ttl)
}
