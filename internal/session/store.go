package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

const activeSessionKeyPrefix = "gymtracker-workout||"

// RedisStore keeps the single active workout of every user. Abandoned workouts expire after ttl.
type RedisStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func activeSessionKey(userID string) string {
	return activeSessionKeyPrefix + userID
}

func (rs *RedisStore) Load(ctx context.Context, userID string) (_ *State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.session.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stateBytes, err := rs.redisClient.Get(ctx, activeSessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("get active session: %w", err)
	}

	state := &State{}
	if err := json.Unmarshal(stateBytes, state); err != nil {
		return nil, fmt.Errorf("unmarshal active session: %w", err)
	}
	return state, nil
}

func (rs *RedisStore) Save(ctx context.Context, userID string, state *State) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.session.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stateBytes, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal active session: %w", err)
	}
	if err := rs.redisClient.Set(ctx, activeSessionKey(userID), stateBytes, rs.ttl).Err(); err != nil {
		return fmt.Errorf("set active session: %w", err)
	}
	return nil
}

// Delete removes the active workout; ErrNoActiveSession if there was none.
func (rs *RedisStore) Delete(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.session.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	deleted, err := rs.redisClient.Del(ctx, activeSessionKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("delete active session: %w", err)
	}
	if deleted == 0 {
		return ErrNoActiveSession
	}
	return nil
}
