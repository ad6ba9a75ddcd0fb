package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"FindrHealth/internal/model"
	"FindrHealth/pkg/email"
	"FindrHealth/pkg/logger"
	"FindrHealth/storage/mq"
)

// StartProviderSubmittedConsumer processes submission events: it sends the
// confirmation email for the new provider. Blocks until the channel closes.
func StartProviderSubmittedConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.ProviderSubmittedMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("failed to unmarshal provider submitted message: %w", err)
		}

		logger.Logger.Info("Processing provider submission",
			zap.String("message_id", msg.MessageID),
			zap.Int64("provider_id", msg.ProviderID),
			zap.String("practice_name", msg.PracticeName),
		)

		if err := sendSubmissionConfirmation(ctx, msg); err != nil {
			// Requeued by the consumer loop; the broker redelivers.
			return err
		}

		return nil
	}

	return mq.Consume(mq.ConsumeOptions{
		Queue:         mq.ProviderSubmittedQueue,
		ConsumerTag:   "provider-submitted-worker",
		PrefetchCount: 10,
		Handler:       handler,
	})
}

func sendSubmissionConfirmation(ctx context.Context, msg model.ProviderSubmittedMessage) error {
	subject := "Your Findr Health application was received"
	body := fmt.Sprintf(
		"Thanks for submitting %s to Findr Health.\r\n\r\n"+
			"Your application is under review. We will email you at this address "+
			"once it has been approved and your listing goes live.\r\n\r\n"+
			"Application reference: %d\r\n",
		msg.PracticeName, msg.ProviderID,
	)

	if err := email.Send(ctx, msg.Email, subject, body); err != nil {
		logger.Logger.Error("Failed to send submission confirmation",
			zap.String("message_id", msg.MessageID),
			zap.Int64("provider_id", msg.ProviderID),
			zap.Error(err),
		)
		return err
	}

	return nil
}
