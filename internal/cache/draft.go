package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	ri "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"FindrHealth/config"
	"FindrHealth/internal/wizard"
	"FindrHealth/pkg/logger"
	"FindrHealth/storage/redis"
)

// Draft snapshots live at findr:draft:{sessionID} with a sliding TTL, so an
// abandoned session eventually cleans itself up.
const draft = "draft"

// DraftStore implements wizard.DraftRepository on Redis.
type DraftStore struct{}

var _ wizard.DraftRepository = DraftStore{}

func (DraftStore) Load(ctx context.Context, sessionID string) (*wizard.Snapshot, error) {
	data, err := redis.Client().Get(ctx, redis.Key(draft, sessionID)).Result()
	if err == ri.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft snapshot: %w", err)
	}

	var snap wizard.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("failed to decode draft snapshot: %w", err)
	}
	return &snap, nil
}

// Save persists the snapshot unless it exceeds the size cap. Oversized
// snapshots are dropped with a warning rather than evicted midway through
// writing; the session continues without durable state.
func (DraftStore) Save(ctx context.Context, sessionID string, snap *wizard.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode draft snapshot: %w", err)
	}

	if max := config.Cfg.DraftSnapshotMaxBytes; max > 0 && len(data) > max {
		logger.Logger.Warn("Draft snapshot exceeds size cap, skipping persistence",
			zap.String("session_id", sessionID),
			zap.Int("size", len(data)),
			zap.Int("max", max),
		)
		return nil
	}

	ttl := time.Duration(config.Cfg.DraftSnapshotTTLHours) * time.Hour
	return redis.Client().Set(ctx, redis.Key(draft, sessionID), data, ttl).Err()
}

func (DraftStore) Clear(ctx context.Context, sessionID string) error {
	return redis.Client().Del(ctx, redis.Key(draft, sessionID)).Err()
}
