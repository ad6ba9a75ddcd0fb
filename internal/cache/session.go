package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	ri "github.com/redis/go-redis/v9"

	"FindrHealth/config"
	"FindrHealth/internal/model"
	"FindrHealth/storage/redis"
)

// Onboarding sessions live at findr:session:{sessionID}, sharing the draft
// snapshot TTL so a session and its draft expire together.
const session = "session"

func SetSession(ctx context.Context, s *model.OnboardingSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	ttl := time.Duration(config.Cfg.DraftSnapshotTTLHours) * time.Hour
	return redis.Client().Set(ctx, redis.Key(session, s.SessionID), data, ttl).Err()
}

// GetSession returns (nil, nil) for an unknown or expired session.
func GetSession(ctx context.Context, sessionID string) (*model.OnboardingSession, error) {
	data, err := redis.Client().Get(ctx, redis.Key(session, sessionID)).Result()
	if err == ri.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s model.OnboardingSession
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, nil
}

func DeleteSession(ctx context.Context, sessionID string) error {
	return redis.Client().Del(ctx, redis.Key(session, sessionID)).Err()
}
