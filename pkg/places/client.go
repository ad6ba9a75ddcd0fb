// Package places wraps the business-lookup upstream. The Google client is
// the real implementation; the mock serves tests and keyless development.
package places

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"FindrHealth/config"
	"FindrHealth/internal/model"
	"FindrHealth/pkg/logger"
)

type Client interface {
	// Search finds businesses matching a free-text query, best match first.
	Search(ctx context.Context, query string) ([]model.Business, error)

	// Details fetches the contact fields for one place.
	Details(ctx context.Context, placeID string) (*model.PlaceDetails, error)
}

var (
	placesClient Client
	placesOnce   sync.Once
	placesErr    error
)

func Init() error {
	placesOnce.Do(func() {
		cfg := config.Cfg

		switch cfg.PlacesProvider {
		case "google":
			placesClient, placesErr = NewGoogleClient()
		case "mock":
			placesClient = NewMockClient()
		default:
			placesErr = fmt.Errorf("unsupported places provider: %s", cfg.PlacesProvider)
		}

		if placesErr != nil {
			logger.Logger.Error("Failed to initialize places client", zap.Error(placesErr))
			return
		}

		logger.Logger.Info("Places client initialized successfully",
			zap.String("provider", cfg.PlacesProvider),
		)
	})

	return placesErr
}

func GetClient() Client {
	if placesClient == nil {
		panic("Places client not initialized, call places.Init() first")
	}
	return placesClient
}

func Search(ctx context.Context, query string) ([]model.Business, error) {
	return GetClient().Search(ctx, query)
}

func Details(ctx context.Context, placeID string) (*model.PlaceDetails, error) {
	return GetClient().Details(ctx, placeID)
}
