package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"FindrHealth/internal/cache"
	"FindrHealth/internal/model"
	"FindrHealth/internal/model/dto"
	pkgerrors "FindrHealth/pkg/errors"
	"FindrHealth/pkg/logger"
	"FindrHealth/pkg/places"
)

var (
	placesService *PlacesService
	placesOnce    sync.Once
)

func Places() *PlacesService {
	placesOnce.Do(func() {
		placesService = &PlacesService{}
	})
	return placesService
}

type PlacesService struct{}

// SearchBusiness proxies a lookup to the places upstream, caching results.
// A single match is flagged so the client can auto-select it.
func (s *PlacesService) SearchBusiness(
	ctx context.Context,
	req *dto.SearchBusinessRequest,
) (*dto.SearchBusinessData, error) {
	query := strings.TrimSpace(req.Term())
	if query == "" {
		return nil, pkgerrors.EmptyQuery
	}
	if zip := strings.TrimSpace(req.ZipCode); zip != "" {
		query = query + " " + zip
	}

	cacheKey := strings.ToLower(query)

	var cached []model.Business
	hit, err := cache.PlacesSearchCache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Logger.Warn("Places cache read failed", zap.Error(err))
	}
	if hit {
		return searchData(cached), nil
	}

	results, err := places.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		// Cache the miss too so repeated bad queries stay cheap.
		if err := cache.PlacesSearchCache.Set(ctx, cacheKey, nil); err != nil {
			logger.Logger.Warn("Places cache write failed", zap.Error(err))
		}
	} else if err := cache.PlacesSearchCache.Set(ctx, cacheKey, results); err != nil {
		logger.Logger.Warn("Places cache write failed", zap.Error(err))
	}

	return searchData(results), nil
}

func searchData(results []model.Business) *dto.SearchBusinessData {
	return &dto.SearchBusinessData{
		Results:      results,
		Count:        len(results),
		AutoSelected: len(results) == 1,
	}
}

// PlaceDetails fetches contact fields for a selected place, cached.
func (s *PlacesService) PlaceDetails(
	ctx context.Context,
	placeID string,
) (*model.PlaceDetails, error) {
	if placeID == "" {
		return nil, pkgerrors.PlaceNotFound
	}

	var cached model.PlaceDetails
	hit, err := cache.PlaceDetailsCache.Get(ctx, placeID, &cached)
	if err != nil {
		logger.Logger.Warn("Place details cache read failed", zap.Error(err))
	}
	if hit && cached.PlaceID != "" {
		return &cached, nil
	}

	details, err := places.Details(ctx, placeID)
	if err != nil {
		return nil, err
	}

	if err := cache.PlaceDetailsCache.Set(ctx, placeID, details); err != nil {
		logger.Logger.Warn("Place details cache write failed", zap.Error(err))
	}

	return details, nil
}

// BusinessForSeed resolves the business used to pre-fill a new draft.
func (s *PlacesService) BusinessForSeed(ctx context.Context, placeID string) (*model.Business, error) {
	details, err := s.PlaceDetails(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load place for seeding: %w", err)
	}

	return &model.Business{
		PlaceID: details.PlaceID,
		Name:    details.Name,
		Address: details.Address,
		Phone:   details.Phone,
		Website: details.Website,
	}, nil
}
