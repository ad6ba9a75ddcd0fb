package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"FindrHealth/pkg/logger"
	"FindrHealth/storage/database"
	"FindrHealth/storage/mq"
	"FindrHealth/storage/redis"
)

// Close shuts the storage backends down in dependency order: stop accepting
// messages first, drop the cache connection, close the database last so
// in-flight writes complete.
func Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Logger.Info("Closing storage connections...")

	if err := mq.Close(ctx); err != nil {
		logger.Logger.Error("Failed to close message queue", zap.Error(err))
	} else {
		logger.Logger.Info("Message queue closed successfully")
	}

	if err := redis.Close(ctx); err != nil {
		logger.Logger.Error("Failed to close Redis connection", zap.Error(err))
	} else {
		logger.Logger.Info("Redis connection closed successfully")
	}

	if err := database.Close(ctx); err != nil {
		logger.Logger.Error("Failed to close database connection", zap.Error(err))
	} else {
		logger.Logger.Info("Database connection closed successfully")
	}

	logger.Logger.Info("All storage connections closed")
}
