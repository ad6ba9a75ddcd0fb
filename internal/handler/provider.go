package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"FindrHealth/internal/service"
	"FindrHealth/pkg/response"
)

// GetProvider returns a submitted provider profile by public ID.
// GET /v1/providers/:provider_id
func GetProvider(ctx context.Context, c *app.RequestContext) {
	providerID := c.Param("provider_id")

	result, err := service.Provider().GetProvider(ctx, providerID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
