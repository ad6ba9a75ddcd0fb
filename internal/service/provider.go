package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"FindrHealth/internal/cache"
	"FindrHealth/internal/model"
	"FindrHealth/internal/model/dto"
	"FindrHealth/internal/queue"
	"FindrHealth/internal/repository"
	"FindrHealth/internal/wizard"
	pkgerrors "FindrHealth/pkg/errors"
	"FindrHealth/pkg/logger"
	"FindrHealth/pkg/metrics"
	"FindrHealth/pkg/snowflake"
)

var (
	providerService *ProviderService
	providerOnce    sync.Once
)

func Provider() *ProviderService {
	providerOnce.Do(func() {
		providerService = &ProviderService{
			store:    repository.Providers,
			profiles: cache.ProviderProfileCache,
		}
	})
	return providerService
}

// ProviderStore is the persistence surface for provider rows.
type ProviderStore interface {
	Create(ctx context.Context, p *model.Provider) error
	GetByPublicID(ctx context.Context, publicID int64) (*model.Provider, error)
	GetByPlaceID(ctx context.Context, placeID string) (*model.Provider, error)
}

// profileCache is the slice of the protected cache the provider service reads
// and writes.
type profileCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

// ProviderService persists finished drafts and serves stored records. It is
// the wizard's SubmissionGateway.
type ProviderService struct {
	store    ProviderStore
	profiles profileCache
}

// Submit writes the finished draft as a provider row and announces it on the
// queue. The queue publish is best-effort: a missed event never unwinds a
// committed submission.
func (s *ProviderService) Submit(ctx context.Context, sessionID string, draft *model.DraftRecord) (int64, error) {
	publicID, err := snowflake.NextID()
	if err != nil {
		return 0, fmt.Errorf("failed to generate provider ID: %w", err)
	}

	if draft.PlaceID != "" {
		if existing, err := s.store.GetByPlaceID(ctx, draft.PlaceID); err == nil && existing != nil {
			// Resubmissions for the same place are allowed; review sorts
			// them out. Flagged here so support can see it early.
			logger.Logger.Warn("Place already has a submitted profile",
				zap.String("place_id", draft.PlaceID),
				zap.Int64("existing_provider_id", existing.PublicID),
			)
		}
	}

	now := time.Now().UTC()
	provider := &model.Provider{
		PublicID:      publicID,
		PracticeName:  draft.PracticeName,
		ProviderTypes: draft.ProviderTypes,
		Phone:         draft.Phone,
		Email:         draft.Email,
		Address:       draft.Address,
		Website:       draft.Website,
		Photos:        draft.Photos,
		Selections:    draft.Selections,
		OptionalInfo:  draft.OptionalInfo,
		Agreement:     draft.Agreement,
		Status:        model.ProviderStatusPending,
		PlaceID:       draft.PlaceID,
		Prefilled:     draft.Prefilled,
		SubmittedAt:   now,
	}

	if err := s.store.Create(ctx, provider); err != nil {
		logger.Logger.Error("Failed to insert provider",
			zap.String("session_id", sessionID),
			zap.String("practice_name", draft.PracticeName),
			zap.Error(err),
		)
		return 0, fmt.Errorf("%w: %v", pkgerrors.SubmissionFailed, err)
	}

	metrics.RecordProviderSubmitted(ctx)

	if err := queue.PublishProviderSubmitted(model.ProviderSubmittedMessage{
		ProviderID:   publicID,
		SessionID:    sessionID,
		PracticeName: provider.PracticeName,
		Email:        provider.Email,
		SubmittedAt:  now,
	}); err != nil {
		logger.Logger.Warn("Provider submitted event not published",
			zap.Int64("provider_id", publicID),
			zap.Error(err),
		)
	}

	return publicID, nil
}

// GetProvider returns a stored record by its public ID, cache first.
func (s *ProviderService) GetProvider(ctx context.Context, providerID string) (*dto.ProviderData, error) {
	publicID, err := strconv.ParseInt(providerID, 10, 64)
	if err != nil {
		return nil, pkgerrors.InvalidProviderID
	}

	var cached model.Provider
	hit, err := s.profiles.Get(ctx, providerID, &cached)
	if err != nil {
		logger.Logger.Warn("Provider cache read failed", zap.Error(err))
	}
	if hit && cached.PublicID != 0 {
		return dto.NewProviderData(&cached), nil
	}

	provider, err := s.store.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ProviderNotFound
		}
		return nil, fmt.Errorf("failed to query provider: %w", err)
	}

	if err := s.profiles.Set(ctx, providerID, provider); err != nil {
		logger.Logger.Warn("Provider cache write failed", zap.Error(err))
	}

	return dto.NewProviderData(provider), nil
}

var _ wizard.SubmissionGateway = (*ProviderService)(nil)
var _ ProviderStore = (*repository.ProviderRepo)(nil)
