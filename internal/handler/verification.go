package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"FindrHealth/internal/model/dto"
	"FindrHealth/internal/service"
	"FindrHealth/pkg/errors"
	"FindrHealth/pkg/response"
)

// SendVerificationCode emails a 6-digit code. When no session_id is given a
// new onboarding session is minted, so this call doubles as session start.
// POST /v1/verification/send
func SendVerificationCode(ctx context.Context, c *app.RequestContext) {
	var req dto.SendCodeRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Verification().RequestCode(ctx, req.SessionID, req.Email)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// VerifyCode checks a submitted code; on success the response carries the
// session token the wizard routes require.
// POST /v1/verification/verify
func VerifyCode(ctx context.Context, c *app.RequestContext) {
	var req dto.VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Verification().SubmitCode(ctx, req.SessionID, req.Code)
	if err != nil {
		// A wrong code still reports how many attempts are left.
		if err == errors.VerificationCodeInvalid && result != nil && result.AttemptsRemaining != nil {
			response.ErrorWithDetails(ctx, c, err, map[string]interface{}{
				"attempts_remaining": *result.AttemptsRemaining,
			})
			return
		}
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
