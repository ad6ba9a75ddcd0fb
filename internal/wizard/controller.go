package wizard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"FindrHealth/internal/model"
	"FindrHealth/internal/model/dto"
	pkgerrors "FindrHealth/pkg/errors"
)

// Controller owns one session's position in the step sequence and its draft
// record. All mutation goes through Advance; validation failures never touch
// the draft or the persisted snapshot.
type Controller struct {
	reg     *Registry
	repo    DraftRepository
	gateway SubmissionGateway
	limits  Limits
	log     *zap.Logger

	sessionID string
	index     int
	draft     *model.DraftRecord
}

func NewController(sessionID string, reg *Registry, repo DraftRepository, gateway SubmissionGateway, limits Limits, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		reg:       reg,
		repo:      repo,
		gateway:   gateway,
		limits:    limits,
		log:       log,
		sessionID: sessionID,
		draft:     model.NewDraftRecord(),
	}
}

// Restore loads a previously persisted snapshot into the controller. Photo
// payloads are absent from snapshots, so the photo list comes back as
// references only.
func (c *Controller) Restore(snap *Snapshot) {
	if snap == nil {
		return
	}
	if snap.Draft != nil {
		c.draft = snap.Draft
	}
	if snap.StepIndex >= 0 && snap.StepIndex < c.reg.Len() {
		c.index = snap.StepIndex
	}
}

// Seed pre-fills identity and location fields from a places-lookup match.
// Only empty fields are filled; a resumed draft keeps what the user typed.
func (c *Controller) Seed(b *model.Business) {
	if b == nil {
		return
	}
	d := c.draft
	if d.PracticeName == "" {
		d.PracticeName = b.Name
	}
	if len(d.ProviderTypes) == 0 {
		d.ProviderTypes = b.ProviderTypes
	}
	if d.Phone == "" {
		d.Phone = b.Phone
	}
	if d.Address.Street == "" {
		d.Address = b.Address
	}
	if d.Website == "" {
		d.Website = b.Website
	}
	d.Prefilled = true
	d.PlaceID = b.PlaceID
}

func (c *Controller) Draft() *model.DraftRecord {
	return c.draft
}

func (c *Controller) StepIndex() int {
	return c.index
}

func (c *Controller) CurrentStep() Step {
	return c.reg.At(c.index)
}

func (c *Controller) TotalSteps() int {
	return c.reg.Len()
}

func (c *Controller) terminal() bool {
	return c.index == c.reg.Len()-1
}

// Result reports a successful transition. ScrollReset tells the client to
// reset scroll/focus for the next step; Completed carries the submission
// outcome on the terminal step.
type Result struct {
	ScrollReset bool
	Completed   bool
	ProviderID  int64
}

// Advance validates the payload against the current step, merges it into the
// draft, persists the snapshot, and moves forward. On validation failure the
// returned ValidationErrors is non-nil and nothing has been mutated.
func (c *Controller) Advance(ctx context.Context, upd dto.StepUpdate) (*Result, ValidationErrors, error) {
	step := c.CurrentStep()
	if upd.Step != step.ID {
		return nil, nil, pkgerrors.StepMismatch
	}

	if verrs := step.Validate(c.limits, c.draft, upd); verrs.Any() {
		return nil, verrs, nil
	}

	step.Apply(c.draft, upd)

	if c.terminal() {
		return c.submit(ctx)
	}

	c.index++
	c.persist(ctx)

	return &Result{ScrollReset: true}, nil, nil
}

// Retreat steps back one position. The first step is the entry point and is
// not reachable from "back"; retreating there is a no-op.
func (c *Controller) Retreat() bool {
	if c.index == 0 {
		return false
	}
	c.index--
	return true
}

// JumpTo repositions the wizard without validating the steps in between.
// Forward jumps are permitted only when every skipped step is marked
// skippable; backward jumps are equivalent to repeated Retreat calls.
func (c *Controller) JumpTo(stepID model.StepID) error {
	target, ok := c.reg.IndexOf(stepID)
	if !ok {
		return pkgerrors.UnknownStep
	}
	for i := c.index; i < target; i++ {
		if !c.reg.At(i).Skippable {
			return pkgerrors.StepNotSkippable
		}
	}
	c.index = target
	return nil
}

// submit runs the terminal transition: mark pending, hand off to the
// gateway, clear the snapshot. A failed submission keeps the draft and the
// snapshot so the user can resubmit.
func (c *Controller) submit(ctx context.Context) (*Result, ValidationErrors, error) {
	c.draft.Status = model.ProviderStatusPending

	providerID, err := c.gateway.Submit(ctx, c.sessionID, c.draft)
	if err != nil {
		c.draft.Status = model.ProviderStatusDraft
		c.persist(ctx)
		return nil, nil, fmt.Errorf("submission failed: %w", err)
	}

	if err := c.repo.Clear(ctx, c.sessionID); err != nil {
		c.log.Warn("Failed to clear draft snapshot after submission",
			zap.String("session_id", c.sessionID),
			zap.Error(err),
		)
	}

	return &Result{Completed: true, ProviderID: providerID}, nil, nil
}

// Persist writes the current snapshot. Advance persists on its own after a
// successful transition; callers that reposition the wizard through Retreat,
// JumpTo, or Seed must persist explicitly or the move is lost on the next
// Restore.
func (c *Controller) Persist(ctx context.Context) {
	c.persist(ctx)
}

// persist writes the snapshot best-effort. Storage failures are logged and
// swallowed: onboarding continues without durable persistence rather than
// failing the user's flow.
func (c *Controller) persist(ctx context.Context) {
	snap := &Snapshot{
		Draft:     c.draft.Snapshot(),
		StepIndex: c.index,
	}
	if err := c.repo.Save(ctx, c.sessionID, snap); err != nil {
		c.log.Warn("Failed to persist draft snapshot",
			zap.String("session_id", c.sessionID),
			zap.Int("step_index", c.index),
			zap.Error(err),
		)
	}
}
