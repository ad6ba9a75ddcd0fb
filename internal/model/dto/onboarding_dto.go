package dto

import "FindrHealth/internal/model"

// CreateSessionRequest starts or resumes an onboarding session. PlaceID
// pre-seeds the draft from a lookup selection; SkipLookup goes straight to
// manual entry.
type CreateSessionRequest struct {
	PlaceID    string `json:"place_id,omitempty"`
	SkipLookup bool   `json:"skip_lookup,omitempty"`
}

type CreateSessionData struct {
	SessionID string             `json:"session_id"`
	Resumed   bool               `json:"resumed"`
	State     *WizardStateData   `json:"state"`
}

// WizardStateData mirrors the controller position plus the draft snapshot the
// client renders from.
type WizardStateData struct {
	CurrentStep      model.StepID       `json:"current_step"`
	CurrentStepIndex int                `json:"current_step_index"`
	TotalSteps       int                `json:"total_steps"`
	StepName         string             `json:"step_name"`
	Draft            *model.DraftRecord `json:"draft"`
	// Photos are dropped from persisted snapshots; a resumed session must
	// re-attach them before the photos step passes again.
	PhotosNeedReattach bool `json:"photos_need_reattach,omitempty"`
}

type AdvanceRequest struct {
	SessionID string     `json:"session_id"`
	Update    StepUpdate `json:"update"`
}

// AdvanceData reports the transition outcome. Completed is set when the
// terminal step submitted; ProviderID then carries the persisted identifier.
type AdvanceData struct {
	State       *WizardStateData `json:"state,omitempty"`
	ScrollReset bool             `json:"scroll_reset,omitempty"`
	Completed   bool             `json:"completed,omitempty"`
	ProviderID  string           `json:"provider_id,omitempty"`
}

type BackRequest struct {
	SessionID string `json:"session_id"`
}

type JumpRequest struct {
	SessionID string       `json:"session_id"`
	Step      model.StepID `json:"step"`
}

// CatalogData is the resolved service list for the draft's provider types,
// with effective values after override shadowing.
type CatalogData struct {
	Services []CatalogServiceData `json:"services"`
}

type CatalogServiceData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Duration    int    `json:"duration"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	Selected    bool   `json:"selected"`
	Overridden  bool   `json:"overridden"`
}
