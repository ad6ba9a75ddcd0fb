package response

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"FindrHealth/pkg/errors"
)

func TestErrorToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation failed", errors.ValidationFailed, http.StatusUnprocessableEntity},
		{"step mismatch", errors.StepMismatch, http.StatusBadRequest},
		{"unknown step", errors.UnknownStep, http.StatusBadRequest},
		{"session not found", errors.SessionNotFound, http.StatusNotFound},
		{"session not owned", errors.SessionNotOwned, http.StatusUnauthorized},
		{"session in progress", errors.SessionInProgress, http.StatusConflict},
		{"code invalid", errors.VerificationCodeInvalid, http.StatusBadRequest},
		{"code expired", errors.VerificationCodeExpired, http.StatusBadRequest},
		{"locked out", errors.VerificationLockedOut, http.StatusTooManyRequests},
		{"rate limited", errors.VerificationRateLimited, http.StatusTooManyRequests},
		{"too many requests", errors.TooManyRequests, http.StatusTooManyRequests},
		{"csrf token invalid", errors.CSRFTokenInvalid, http.StatusForbidden},
		{"place not found", errors.PlaceNotFound, http.StatusNotFound},
		{"places unavailable", errors.PlacesUnavailable, http.StatusBadGateway},
		{"submission failed", errors.SubmissionFailed, http.StatusBadGateway},
		{"provider not found", errors.ProviderNotFound, http.StatusNotFound},
		{"unauthorized", errors.Unauthorized, http.StatusUnauthorized},
		{"plain error falls back to 500", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errorToHTTPStatus(tc.err))
		})
	}
}

func TestErrorToHTTPStatusUnwrapsWrappedDefinitions(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{
			"wrapped places outage",
			fmt.Errorf("%w: upstream status 503", errors.PlacesUnavailable),
			http.StatusBadGateway,
		},
		{
			"double-wrapped submission failure",
			fmt.Errorf("submission failed: %w", fmt.Errorf("%w: insert provider", errors.SubmissionFailed)),
			http.StatusBadGateway,
		},
		{
			"wrapped lockout",
			fmt.Errorf("%w: session sess-1", errors.VerificationLockedOut),
			http.StatusTooManyRequests,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errorToHTTPStatus(tc.err))

			def, ok := definition(tc.err)
			assert.True(t, ok, "wrapped definition must still resolve to its code")
			assert.NotEmpty(t, def.Code)
		})
	}
}

func TestErrorCodeLookupRoundTrip(t *testing.T) {
	for code, def := range errors.Lookup {
		assert.Equal(t, code, def.Code)
		assert.NotEmpty(t, def.Message, "definition %s has no message", code)
	}
}
