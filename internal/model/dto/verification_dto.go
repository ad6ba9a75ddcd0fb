package dto

// SendCodeRequest asks for a one-time code to be emailed to the business
// contact address. SessionID is minted server-side when absent, so the first
// send also starts the onboarding session.
type SendCodeRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Email     string `json:"email"`
}

type SendCodeData struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
	ExpiresAt string `json:"expires_at"`
}

type VerifyCodeRequest struct {
	SessionID string `json:"session_id"`
	Code      string `json:"code"`
}

// VerifyCodeData reports the check outcome. AttemptsRemaining is populated on
// mismatch; Token is the onboarding JWT issued on success.
type VerifyCodeData struct {
	Success           bool   `json:"success"`
	AttemptsRemaining *int   `json:"attempts_remaining,omitempty"`
	Token             string `json:"token,omitempty"`
	ExpiresIn         int    `json:"expires_in,omitempty"`
}
