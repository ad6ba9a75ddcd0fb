package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"FindrHealth/internal/model/dto"
	"FindrHealth/internal/service"
	"FindrHealth/pkg/response"
)

// SearchBusiness looks a practice up by name and ZIP so the wizard can
// prefill the draft.
// POST /v1/search/business
func SearchBusiness(ctx context.Context, c *app.RequestContext) {
	var req dto.SearchBusinessRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Places().SearchBusiness(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetPlaceDetails fetches full details for one lookup result.
// GET /v1/search/place/:place_id
func GetPlaceDetails(ctx context.Context, c *app.RequestContext) {
	placeID := c.Param("place_id")

	result, err := service.Places().PlaceDetails(ctx, placeID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
