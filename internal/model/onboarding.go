package model

// StepID names one wizard step. Step order and skippability live in the
// wizard registry; these are the identifiers step payloads are tagged with.
type StepID string

const (
	StepBasics          StepID = "basics"
	StepLocation        StepID = "location"
	StepPhotos          StepID = "photos"
	StepServices        StepID = "services"
	StepOptionalDetails StepID = "optional-details"
	StepReview          StepID = "review"
	StepAgreement       StepID = "agreement"
)

// OnboardingSession ties a wizard in progress to its verification state.
// Stored in Redis alongside the draft snapshot.
type OnboardingSession struct {
	SessionID     string `json:"session_id"`
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified"`
	PlaceID       string `json:"place_id,omitempty"`
	CreatedAt     string `json:"created_at"`
}
