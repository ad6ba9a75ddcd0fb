package model

import "time"

// ProviderSubmittedMessage is published when a draft completes the wizard and
// lands in the providers table. The worker picks it up to send the
// confirmation email and enqueue the record for back-office review.
type ProviderSubmittedMessage struct {
	MessageID    string    `json:"message_id"`
	ProviderID   int64     `json:"provider_id"`
	SessionID    string    `json:"session_id"`
	PracticeName string    `json:"practice_name"`
	Email        string    `json:"email"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
