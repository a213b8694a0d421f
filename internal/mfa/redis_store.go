package mfa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "mfa:challenge:"

// redisGrace keeps an expired challenge around briefly so Verify can still
// report ErrChallengeExpired instead of ErrChallengeNotFound.
const redisGrace = time.Minute

// RedisStore shares challenges between server replicas. Keys expire on
// their own shortly after the challenge does.
type RedisStore struct {
	client redis.UniversalClient
	now    func() time.Time
}

// NewRedisStore wraps an existing client. The caller owns the client.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func (s *RedisStore) Get(ctx context.Context, principalID int64) (Challenge, bool, error) {
	raw, err := s.client.Get(ctx, redisKey(principalID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Challenge{}, false, nil
	}
	if err != nil {
		return Challenge{}, false, fmt.Errorf("redis get challenge: %w", err)
	}

	var c Challenge
	if err := json.Unmarshal(raw, &c); err != nil {
		return Challenge{}, false, fmt.Errorf("decode challenge: %w", err)
	}
	return c, true, nil
}

func (s *RedisStore) Set(ctx context.Context, principalID int64, c Challenge) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode challenge: %w", err)
	}

	ttl := max(c.ExpiresAt.Sub(s.now()), 0) + redisGrace

	if err := s.client.Set(ctx, redisKey(principalID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set challenge: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, principalID int64) error {
	if err := s.client.Del(ctx, redisKey(principalID)).Err(); err != nil {
		return fmt.Errorf("redis delete challenge: %w", err)
	}
	return nil
}

// maxConsumeAttempts bounds the optimistic retries of Consume when another
// writer touches the key between WATCH and EXEC.
const maxConsumeAttempts = 5

// Consume watches the key, decides on the loaded challenge and deletes it
// inside MULTI/EXEC. A concurrent Set or Delete from any replica aborts
// the transaction and the whole step is retried against the new state.
func (s *RedisStore) Consume(ctx context.Context, principalID int64, decide func(Challenge) bool) (Challenge, bool, error) {
	key := redisKey(principalID)

	var (
		challenge Challenge
		found     bool
	)
	txf := func(tx *redis.Tx) error {
		challenge, found = Challenge{}, false

		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("redis get challenge: %w", err)
		}
		if err := json.Unmarshal(raw, &challenge); err != nil {
			return fmt.Errorf("decode challenge: %w", err)
		}
		found = true

		if !decide(challenge) {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			return nil
		})
		return err
	}

	for range maxConsumeAttempts {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return Challenge{}, false, err
		}
		return challenge, found, nil
	}
	return Challenge{}, false, ErrStoreContention
}

// Ping checks connectivity at startup.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func redisKey(principalID int64) string {
	return redisKeyPrefix + strconv.FormatInt(principalID, 10)
}
