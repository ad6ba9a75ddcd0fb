// Package wizard owns the onboarding step sequence: which step the session is
// on, how step payloads merge into the draft record, and which invariants
// gate each forward transition. It talks to storage and submission through
// injected interfaces only.
package wizard

import (
	"context"

	"FindrHealth/internal/model"
	"FindrHealth/internal/model/dto"
)

// Step describes one wizard step. Validate runs before Apply; Apply merges
// the payload into the draft and must not be reached with an invalid payload.
type Step struct {
	ID        model.StepID
	Name      string
	Skippable bool

	Validate func(limits Limits, draft *model.DraftRecord, upd dto.StepUpdate) ValidationErrors
	Apply    func(draft *model.DraftRecord, upd dto.StepUpdate)
}

// Registry is the ordered step list. Order is fixed at construction.
type Registry struct {
	steps []Step
	byID  map[model.StepID]int
}

func NewRegistry(steps []Step) *Registry {
	byID := make(map[model.StepID]int, len(steps))
	for i, s := range steps {
		byID[s.ID] = i
	}
	return &Registry{steps: steps, byID: byID}
}

// DefaultRegistry returns the production step sequence.
func DefaultRegistry() *Registry {
	return NewRegistry([]Step{
		{ID: model.StepBasics, Name: "The Basics", Validate: validateBasics, Apply: applyBasics},
		{ID: model.StepLocation, Name: "Location", Validate: validateLocation, Apply: applyLocation},
		{ID: model.StepPhotos, Name: "Photos", Validate: validatePhotos, Apply: applyPhotos},
		{ID: model.StepServices, Name: "Services", Validate: validateServices, Apply: applyServices},
		{ID: model.StepOptionalDetails, Name: "Optional Details", Skippable: true, Validate: validateOptional, Apply: applyOptional},
		{ID: model.StepReview, Name: "Review", Validate: validateReview, Apply: applyReview},
		{ID: model.StepAgreement, Name: "Agreement", Validate: validateAgreement, Apply: applyAgreement},
	})
}

func (r *Registry) Len() int {
	return len(r.steps)
}

func (r *Registry) At(index int) Step {
	return r.steps[index]
}

func (r *Registry) IndexOf(id model.StepID) (int, bool) {
	i, ok := r.byID[id]
	return i, ok
}

// DraftRepository persists draft snapshots between transitions. Load returns
// (nil, nil) when no snapshot exists for the session.
type DraftRepository interface {
	Load(ctx context.Context, sessionID string) (*Snapshot, error)
	Save(ctx context.Context, sessionID string, snap *Snapshot) error
	Clear(ctx context.Context, sessionID string) error
}

// SubmissionGateway accepts the finished record and returns the persisted
// provider identifier.
type SubmissionGateway interface {
	Submit(ctx context.Context, sessionID string, draft *model.DraftRecord) (int64, error)
}

// Snapshot is what the repository stores: the draft (minus photo payloads,
// see DraftRecord.Snapshot) plus the controller position.
type Snapshot struct {
	Draft     *model.DraftRecord `json:"draft"`
	StepIndex int                `json:"step_index"`
}
