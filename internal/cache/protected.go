package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	ri "github.com/redis/go-redis/v9"

	"FindrHealth/storage/redis"
)

const (
	// Negative lookups are cached briefly so a hammered miss does not fall
	// through to the upstream every time.
	emptyValueFlag = "__EMPTY__"
	emptyValueTTL  = 5 * time.Minute
	// Small random delay on reads spreads out synchronized expiry stampedes.
	breakerRandomDelayMax = 200 * time.Millisecond
)

// ProtectedCache is a JSON cache wrapper with empty-value caching and
// stampede smoothing. Used for upstream lookups (places search, provider
// profiles) where misses are expensive.
type ProtectedCache struct {
	keyPrefix string
	ttl       time.Duration
	emptyTTL  time.Duration
}

func NewProtectedCache(keyPrefix string, ttl time.Duration) *ProtectedCache {
	return &ProtectedCache{
		keyPrefix: keyPrefix,
		ttl:       ttl,
		emptyTTL:  emptyValueTTL,
	}
}

// Set stores the value, or the empty-value marker when value is nil.
func (pc *ProtectedCache) Set(ctx context.Context, key string, value interface{}) error {
	cacheKey := redis.Key(pc.keyPrefix, key)

	var data string
	var ttl time.Duration

	if value == nil {
		data = emptyValueFlag
		ttl = pc.emptyTTL
	} else {
		dataBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal cache value: %w", err)
		}
		data = string(dataBytes)
		ttl = pc.ttl
	}

	return redis.Client().Set(ctx, cacheKey, data, ttl).Err()
}

// Get reports (hit, error). A hit with dest untouched means a cached empty
// value: the upstream is known to have nothing for this key.
func (pc *ProtectedCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	cacheKey := redis.Key(pc.keyPrefix, key)

	delay := time.Duration(rand.Intn(int(breakerRandomDelayMax)))
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-time.After(delay):
	}

	data, err := redis.Client().Get(ctx, cacheKey).Result()
	if err != nil {
		if err == ri.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache: %w", err)
	}

	if data == emptyValueFlag {
		return true, nil
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return true, nil
}

func (pc *ProtectedCache) Delete(ctx context.Context, key string) error {
	return redis.Client().Del(ctx, redis.Key(pc.keyPrefix, key)).Err()
}

// Shared instances, one per cached lookup.
var (
	PlacesSearchCache    = NewProtectedCache("places:search", 15*time.Minute)
	PlaceDetailsCache    = NewProtectedCache("places:details", 15*time.Minute)
	ProviderProfileCache = NewProtectedCache("provider", 1*time.Hour)
)
