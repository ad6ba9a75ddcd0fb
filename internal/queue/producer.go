package queue

import (
	"fmt"

	"go.uber.org/zap"

	"FindrHealth/internal/model"
	"FindrHealth/pkg/logger"
	"FindrHealth/pkg/snowflake"
	"FindrHealth/storage/mq"
)

// PublishProviderSubmitted announces a completed submission to the worker.
func PublishProviderSubmitted(msg model.ProviderSubmittedMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextID()
		if err != nil {
			logger.Logger.Error("Failed to generate message ID",
				zap.Int64("provider_id", msg.ProviderID),
				zap.Error(err),
			)
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = fmt.Sprintf("provider_submitted_%d", id)
	}

	err := mq.PublishMessage(
		mq.EventsExchange,
		mq.ProviderSubmittedKey,
		msg,
	)

	if err != nil {
		logger.Logger.Error("Failed to publish provider submitted message",
			zap.String("message_id", msg.MessageID),
			zap.Int64("provider_id", msg.ProviderID),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Published provider submitted message",
		zap.String("message_id", msg.MessageID),
		zap.Int64("provider_id", msg.ProviderID),
		zap.String("practice_name", msg.PracticeName),
	)

	return nil
}
