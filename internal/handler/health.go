package handler

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"

	"FindrHealth/pkg/response"
	"FindrHealth/storage/redis"
)

// Health reports liveness plus a Redis round-trip; the wizard cannot take a
// single step without Redis, so a dead cache means not ready.
// GET /health
func Health(ctx context.Context, c *app.RequestContext) {
	status := "ok"
	if err := redis.Client().Ping(ctx).Err(); err != nil {
		status = "degraded"
	}

	response.Success(ctx, c, map[string]interface{}{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
