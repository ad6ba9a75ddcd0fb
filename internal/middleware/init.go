package middleware

import (
	"go.uber.org/zap"

	"FindrHealth/pkg/logger"
)

// Init wires the middlewares that need setup before routing starts.
func Init() error {
	if err := initAuthMiddleware(); err != nil {
		logger.Logger.Error("Failed to initialize auth middleware", zap.Error(err))
		return err
	}

	logger.Logger.Info("All middlewares initialized successfully")
	return nil
}
