package response

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"FindrHealth/pkg/errors"
)

// ErrorResponse is the envelope for every error the API returns.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Details map[string]interface{} `json:"details,omitempty"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
}

// SuccessResponse is the envelope for every successful API response.
type SuccessResponse struct {
	Data interface{}            `json:"data"`
	Meta map[string]interface{} `json:"meta,omitempty"`
}

// definition unwraps err down to its Definition. Service and gateway layers
// wrap definitions with context (fmt.Errorf %w), so a bare type assertion
// would miss them.
func definition(err error) (errors.Definition, bool) {
	var def errors.Definition
	ok := stderrors.As(err, &def)
	return def, ok
}

func errorToHTTPStatus(err error) int {
	def, ok := definition(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch def.Code {
	case "VALIDATION_FAILED":
		return http.StatusUnprocessableEntity // 422
	case "VERIFICATION_RATE_LIMITED", "VERIFICATION_LOCKED_OUT", "TOO_MANY_REQUESTS":
		return http.StatusTooManyRequests // 429
	case "STEP_MISMATCH", "STEP_NOT_SKIPPABLE", "UNKNOWN_STEP",
		"VERIFICATION_CODE_EXPIRED", "VERIFICATION_CODE_INVALID",
		"INVALID_REQUEST", "INVALID_EMAIL", "EMPTY_QUERY",
		"INVALID_PROVIDER_ID":
		return http.StatusBadRequest // 400
	case "UNAUTHORIZED", "SESSION_NOT_OWNED":
		return http.StatusUnauthorized // 401
	case "CSRF_TOKEN_INVALID":
		return http.StatusForbidden // 403
	case "SESSION_NOT_FOUND", "PLACE_NOT_FOUND", "PROVIDER_NOT_FOUND":
		return http.StatusNotFound // 404
	case "SESSION_IN_PROGRESS":
		return http.StatusConflict // 409
	case "PLACES_UNAVAILABLE", "EMAIL_DELIVERY_FAILED", "SUBMISSION_FAILED":
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}

// Error writes the error envelope with the status mapped from the code.
func Error(ctx context.Context, c *app.RequestContext, err error) {
	statusCode := errorToHTTPStatus(err)

	var code, message string
	if def, ok := definition(err); ok {
		code = def.Code
		message = def.Message
	} else {
		code = "INTERNAL_ERROR"
		message = err.Error()
	}

	c.JSON(statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(ctx context.Context, c *app.RequestContext, err error, details map[string]interface{}) {
	statusCode := errorToHTTPStatus(err)

	var code, message string
	if def, ok := definition(err); ok {
		code = def.Code
		message = def.Message
	} else {
		code = "INTERNAL_ERROR"
		message = err.Error()
	}

	c.JSON(statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func Success(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
	})
}

func SuccessWithMeta(ctx context.Context, c *app.RequestContext, data interface{}, meta map[string]interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func BindError(ctx context.Context, c *app.RequestContext, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

// NoContent is used by handlers that delete or reset state.
func NoContent(ctx context.Context, c *app.RequestContext) {
	c.Status(http.StatusNoContent)
}
