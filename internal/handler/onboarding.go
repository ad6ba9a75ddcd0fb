package handler

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"

	"FindrHealth/internal/middleware"
	"FindrHealth/internal/model"
	"FindrHealth/internal/model/dto"
	"FindrHealth/internal/service"
	"FindrHealth/pkg/errors"
	"FindrHealth/pkg/response"
)

// sessionIdentity pulls the session ID and email claim the auth middleware
// stashed from the bearer token. The email claim backs the ownership check
// in the service layer.
func sessionIdentity(ctx context.Context, c *app.RequestContext) (sid, email string, ok bool) {
	sid, ok = middleware.GetSessionID(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("session ID not found in context"))
		return "", "", false
	}
	email, _ = middleware.GetSessionEmail(ctx, c)
	return sid, email, true
}

// CreateSession starts or resumes the wizard for the verified session,
// optionally seeding the draft from a business lookup result.
// POST /v1/onboarding/session
func CreateSession(ctx context.Context, c *app.RequestContext) {
	sid, email, ok := sessionIdentity(ctx, c)
	if !ok {
		return
	}

	var req dto.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Onboarding().CreateSession(ctx, sid, email, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetWizardState returns the current step and draft for resume.
// GET /v1/onboarding/state
func GetWizardState(ctx context.Context, c *app.RequestContext) {
	sid, email, ok := sessionIdentity(ctx, c)
	if !ok {
		return
	}

	result, err := service.Onboarding().State(ctx, sid, email)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// AdvanceStep validates the step payload, merges it into the draft, and
// moves the wizard forward. Advancing past the final step submits the
// provider application.
// POST /v1/onboarding/advance
func AdvanceStep(ctx context.Context, c *app.RequestContext) {
	sid, email, ok := sessionIdentity(ctx, c)
	if !ok {
		return
	}

	var req dto.AdvanceRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	// The signing IP is recorded server-side, never trusted from the body.
	if req.Update.Step == model.StepAgreement && req.Update.Agreement != nil {
		req.Update.Agreement.IPAddress = c.ClientIP()
	}

	result, verrs, err := service.Onboarding().Advance(ctx, sid, email, req.Update)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	if verrs.Any() {
		details := make(map[string]interface{}, len(verrs))
		for field, msg := range verrs {
			details[field] = msg
		}
		response.ErrorWithDetails(ctx, c, errors.ValidationFailed, details)
		return
	}

	response.Success(ctx, c, result)
}

// GoBack moves the wizard one step back without validation.
// POST /v1/onboarding/back
func GoBack(ctx context.Context, c *app.RequestContext) {
	sid, email, ok := sessionIdentity(ctx, c)
	if !ok {
		return
	}

	result, err := service.Onboarding().Back(ctx, sid, email)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// JumpToStep moves directly to a step. Backward jumps are always allowed;
// forward jumps only across skippable steps.
// POST /v1/onboarding/jump
func JumpToStep(ctx context.Context, c *app.RequestContext) {
	sid, email, ok := sessionIdentity(ctx, c)
	if !ok {
		return
	}

	var req dto.JumpRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Onboarding().Jump(ctx, sid, email, req.Step)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// GetServiceCatalog lists the effective services for the draft's provider
// types, with the draft's selections and overrides applied.
// GET /v1/onboarding/catalog
func GetServiceCatalog(ctx context.Context, c *app.RequestContext) {
	sid, email, ok := sessionIdentity(ctx, c)
	if !ok {
		return
	}

	result, err := service.Onboarding().Catalog(ctx, sid, email)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
