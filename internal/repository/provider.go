package repository

import (
	"context"

	"FindrHealth/internal/model"
	"FindrHealth/storage/database"
)

// Providers is the data access layer for provider rows. Services go through
// it instead of building gorm queries inline; ProviderQuerier in generate.go
// documents the same surface for the gen workflow.
var Providers = &ProviderRepo{}

type ProviderRepo struct{}

func (r *ProviderRepo) Create(ctx context.Context, p *model.Provider) error {
	return database.DB().WithContext(ctx).Create(p).Error
}

// GetByPublicID finds a provider by the snowflake ID exposed in URLs.
// Returns gorm.ErrRecordNotFound unchanged; the caller owns the mapping to a
// business error.
func (r *ProviderRepo) GetByPublicID(ctx context.Context, publicID int64) (*model.Provider, error) {
	var p model.Provider
	if err := database.DB().WithContext(ctx).Where("public_id = ?", publicID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByPlaceID finds a provider seeded from a business lookup result, used
// to spot duplicate onboarding for the same place.
func (r *ProviderRepo) GetByPlaceID(ctx context.Context, placeID string) (*model.Provider, error) {
	var p model.Provider
	if err := database.DB().WithContext(ctx).Where("place_id = ?", placeID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
