// Package cache is the thin Redis access layer: one file per concern, plain
// functions over the shared client.
package cache

import (
	"context"
	"time"

	ri "github.com/redis/go-redis/v9"

	"FindrHealth/config"
	"FindrHealth/storage/redis"
)

// Verification keys. Codes, attempts, and lockouts are scoped by the
// onboarding session; the daily send cap is scoped by the salted email hash
// so switching sessions does not reset it.
//
//	findr:verify:{sessionID}                 the active code
//	findr:verify:attempts:{sessionID}        failed-attempt counter
//	findr:verify:count:{emailHash}:{date}    daily send counter
//	findr:verify:lock:{sessionID}            lockout flag
const verify = "verify"

// SetCode stores a freshly issued code, replacing any previous one, and
// resets the attempt counter so the new code gets the full allowance.
func SetCode(ctx context.Context, sessionID, code string) error {
	ttl := time.Duration(config.Cfg.VerificationExpireSeconds) * time.Second

	pipe := redis.Client().TxPipeline()
	pipe.Set(ctx, redis.Key(verify, sessionID), code, ttl)
	pipe.Del(ctx, redis.Key(verify, "attempts", sessionID))
	_, err := pipe.Exec(ctx)
	return err
}

// GetCode returns the active code. A miss means expired or never sent.
func GetCode(ctx context.Context, sessionID string) (string, error) {
	code, err := redis.Client().Get(ctx, redis.Key(verify, sessionID)).Result()
	if err == ri.Nil {
		return "", nil
	}
	return code, err
}

func DeleteCode(ctx context.Context, sessionID string) error {
	pipe := redis.Client().TxPipeline()
	pipe.Del(ctx, redis.Key(verify, sessionID))
	pipe.Del(ctx, redis.Key(verify, "attempts", sessionID))
	_, err := pipe.Exec(ctx)
	return err
}

// IncrAttempts bumps the failed-attempt counter and returns the new value.
// The counter expires with the code window.
func IncrAttempts(ctx context.Context, sessionID string) (int, error) {
	key := redis.Key(verify, "attempts", sessionID)

	count, err := redis.Client().Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	if count == 1 {
		ttl := time.Duration(config.Cfg.VerificationExpireSeconds) * time.Second
		redis.Client().Expire(ctx, key, ttl)
	}

	return int(count), nil
}

// IncrSendCount bumps today's send counter for rate limiting, returning the
// count after the increment. The key expires at local midnight.
func IncrSendCount(ctx context.Context, emailHash string) (int, error) {
	date := time.Now().Format("2006-01-02")
	key := redis.Key(verify, "count", emailHash, date)

	count, err := redis.Client().Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	if count == 1 {
		now := time.Now()
		tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
		redis.Client().Expire(ctx, key, tomorrow.Sub(now))
	}

	return int(count), nil
}

// SetLockout flags the email as locked after too many failed attempts.
func SetLockout(ctx context.Context, sessionID string) error {
	ttl := time.Duration(config.Cfg.VerificationLockSeconds) * time.Second
	return redis.Client().Set(ctx, redis.Key(verify, "lock", sessionID), 1, ttl).Err()
}

func IsLockedOut(ctx context.Context, sessionID string) (bool, error) {
	n, err := redis.Client().Exists(ctx, redis.Key(verify, "lock", sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
