package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition carries a business error code with its default message.
type Definition struct {
	Code    string
	Message string
}

// Wizard step errors.
var (
	ValidationFailed  = Definition{Code: "VALIDATION_FAILED", Message: "Step validation failed"}
	StepMismatch      = Definition{Code: "STEP_MISMATCH", Message: "Payload does not match current step"}
	StepNotSkippable  = Definition{Code: "STEP_NOT_SKIPPABLE", Message: "Step cannot be skipped"}
	UnknownStep       = Definition{Code: "UNKNOWN_STEP", Message: "Unknown wizard step"}
	SessionNotFound   = Definition{Code: "SESSION_NOT_FOUND", Message: "Onboarding session not found"}
	SessionNotOwned   = Definition{Code: "SESSION_NOT_OWNED", Message: "Session does not belong to caller"}
	SessionInProgress = Definition{Code: "SESSION_IN_PROGRESS", Message: "Another transition is in flight"}
)

// Ownership verification errors.
var (
	VerificationCodeExpired = Definition{Code: "VERIFICATION_CODE_EXPIRED", Message: "Verification code expired"}
	VerificationCodeInvalid = Definition{Code: "VERIFICATION_CODE_INVALID", Message: "Verification code invalid"}
	VerificationLockedOut   = Definition{Code: "VERIFICATION_LOCKED_OUT", Message: "Too many failed attempts, request a new code"}
	VerificationRateLimited = Definition{Code: "VERIFICATION_RATE_LIMITED", Message: "Verification send limit reached"}
	EmailDeliveryFailed     = Definition{Code: "EMAIL_DELIVERY_FAILED", Message: "Failed to deliver verification email"}
	InvalidEmail            = Definition{Code: "INVALID_EMAIL", Message: "Invalid email address"}
	Unauthorized            = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
)

// Places lookup errors.
var (
	PlacesUnavailable = Definition{Code: "PLACES_UNAVAILABLE", Message: "Business lookup is temporarily unavailable"}
	PlaceNotFound     = Definition{Code: "PLACE_NOT_FOUND", Message: "Place not found"}
	EmptyQuery        = Definition{Code: "EMPTY_QUERY", Message: "Search query is required"}
)

// Submission errors.
var (
	SubmissionFailed  = Definition{Code: "SUBMISSION_FAILED", Message: "Failed to submit provider profile"}
	ProviderNotFound  = Definition{Code: "PROVIDER_NOT_FOUND", Message: "Provider not found"}
	InvalidProviderID = Definition{Code: "INVALID_PROVIDER_ID", Message: "Invalid provider ID format"}
)

// Transport errors.
var (
	TooManyRequests  = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests, slow down"}
	CSRFTokenInvalid = Definition{Code: "CSRF_TOKEN_INVALID", Message: "CSRF token missing or invalid"}
)

// Token errors.
var (
	ErrTokenGeneratorNotInitialized = Definition{Code: "TOKEN_GENERATOR_NOT_INITIALIZED", Message: "Token generator not initialized"}
)

// Lookup resolves a code back to its Definition.
var Lookup = map[string]Definition{
	ValidationFailed.Code:        ValidationFailed,
	StepMismatch.Code:            StepMismatch,
	StepNotSkippable.Code:        StepNotSkippable,
	UnknownStep.Code:             UnknownStep,
	SessionNotFound.Code:         SessionNotFound,
	SessionNotOwned.Code:         SessionNotOwned,
	SessionInProgress.Code:       SessionInProgress,
	VerificationCodeExpired.Code: VerificationCodeExpired,
	VerificationCodeInvalid.Code: VerificationCodeInvalid,
	VerificationLockedOut.Code:   VerificationLockedOut,
	VerificationRateLimited.Code: VerificationRateLimited,
	EmailDeliveryFailed.Code:     EmailDeliveryFailed,
	InvalidEmail.Code:            InvalidEmail,
	Unauthorized.Code:            Unauthorized,
	PlacesUnavailable.Code:       PlacesUnavailable,
	PlaceNotFound.Code:           PlaceNotFound,
	EmptyQuery.Code:              EmptyQuery,
	SubmissionFailed.Code:        SubmissionFailed,
	ProviderNotFound.Code:        ProviderNotFound,
	InvalidProviderID.Code:       InvalidProviderID,
	TooManyRequests.Code:         TooManyRequests,
	CSRFTokenInvalid.Code:        CSRFTokenInvalid,
}

// Get returns the Definition for a code, or a generic one when unknown.
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
