package email

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"FindrHealth/config"
	"FindrHealth/pkg/logger"
)

// Client sends transactional email. There is one implementation per
// provider; tests use the mock.
type Client interface {
	Send(ctx context.Context, to, subject, body string) error
}

var (
	emailClient Client
	emailOnce   sync.Once
	emailErr    error
)

func Init() error {
	emailOnce.Do(func() {
		cfg := config.Cfg

		switch cfg.EmailProvider {
		case "smtp":
			emailClient = NewSMTPClient()
		case "mock":
			emailClient = NewMockClient()
		default:
			emailErr = fmt.Errorf("unsupported email provider: %s", cfg.EmailProvider)
		}

		if emailErr != nil {
			logger.Logger.Error("Failed to initialize email client", zap.Error(emailErr))
			return
		}

		logger.Logger.Info("Email client initialized successfully",
			zap.String("provider", cfg.EmailProvider),
		)
	})

	return emailErr
}

func GetClient() Client {
	if emailClient == nil {
		panic("Email client not initialized, call email.Init() first")
	}
	return emailClient
}

func Send(ctx context.Context, to, subject, body string) error {
	return GetClient().Send(ctx, to, subject, body)
}
