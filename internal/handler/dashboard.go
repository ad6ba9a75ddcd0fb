package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"FindrHealth/internal/service"
	"FindrHealth/pkg/response"
)

// GetDashboardStats returns the aggregate counters shown on the provider
// dashboard.
// GET /v1/dashboard/stats
func GetDashboardStats(ctx context.Context, c *app.RequestContext) {
	result, err := service.Dashboard().Stats(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetDashboardBookings returns the upcoming bookings list.
// GET /v1/dashboard/bookings
func GetDashboardBookings(ctx context.Context, c *app.RequestContext) {
	result, err := service.Dashboard().Bookings(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetDashboardReviews returns recent patient reviews.
// GET /v1/dashboard/reviews
func GetDashboardReviews(ctx context.Context, c *app.RequestContext) {
	result, err := service.Dashboard().Reviews(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
