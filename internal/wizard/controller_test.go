package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FindrHealth/internal/catalog"
	"FindrHealth/internal/model"
	"FindrHealth/internal/model/dto"
	pkgerrors "FindrHealth/pkg/errors"
)

// memoryRepo is an in-memory DraftRepository with programmable failures.
type memoryRepo struct {
	snaps    map[string]*Snapshot
	saveErr  error
	saves    int
	clears   int
	clearErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{snaps: make(map[string]*Snapshot)}
}

func (r *memoryRepo) Load(ctx context.Context, sessionID string) (*Snapshot, error) {
	return r.snaps[sessionID], nil
}

func (r *memoryRepo) Save(ctx context.Context, sessionID string, snap *Snapshot) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.snaps[sessionID] = snap
	return nil
}

func (r *memoryRepo) Clear(ctx context.Context, sessionID string) error {
	r.clears++
	if r.clearErr != nil {
		return r.clearErr
	}
	delete(r.snaps, sessionID)
	return nil
}

type fakeGateway struct {
	err        error
	submits    int
	providerID int64
	lastDraft  *model.DraftRecord
}

func (g *fakeGateway) Submit(ctx context.Context, sessionID string, draft *model.DraftRecord) (int64, error) {
	g.submits++
	g.lastDraft = draft
	if g.err != nil {
		return 0, g.err
	}
	return g.providerID, nil
}

func newTestController(repo DraftRepository, gw SubmissionGateway) *Controller {
	return NewController("sess-1", DefaultRegistry(), repo, gw, DefaultLimits(), nil)
}

func basicsUpdate() dto.StepUpdate {
	return dto.StepUpdate{Step: model.StepBasics, Basics: &dto.BasicsUpdate{
		PracticeName:  "Acme Clinic",
		ProviderTypes: []model.ProviderType{model.ProviderTypeMedical},
		Phone:         "555-123-4567",
		Email:         "owner@acmeclinic.com",
	}}
}

func locationUpdate() dto.StepUpdate {
	return dto.StepUpdate{Step: model.StepLocation, Location: &dto.LocationUpdate{
		Street: "100 Main St", City: "Springfield", State: "IL", Zip: "62704",
	}}
}

func photosUpdate() dto.StepUpdate {
	return dto.StepUpdate{Step: model.StepPhotos, Photos: &dto.PhotosUpdate{
		Photos: []dto.PhotoUpload{{Data: []byte{0xff, 0xd8}, MIME: "image/jpeg"}},
	}}
}

func servicesUpdate() dto.StepUpdate {
	return dto.StepUpdate{Step: model.StepServices, Services: &dto.ServicesUpdate{
		Selections: []model.ServiceSelection{{ServiceID: "annual-physical"}, {ServiceID: "flu-shot"}},
	}}
}

func optionalUpdate() dto.StepUpdate {
	return dto.StepUpdate{Step: model.StepOptionalDetails, Optional: &dto.OptionalUpdate{}}
}

func reviewUpdate() dto.StepUpdate {
	return dto.StepUpdate{Step: model.StepReview, Review: &dto.ReviewUpdate{Confirmed: true}}
}

func agreementUpdate() dto.StepUpdate {
	initials := make(map[int]string, len(catalog.AgreementSections))
	for _, s := range catalog.AgreementSections {
		initials[s.ID] = "JD"
	}
	return dto.StepUpdate{Step: model.StepAgreement, Agreement: &dto.AgreementUpdate{
		Initials:  initials,
		Signature: "Jane Doe",
	}}
}

// advanceAll walks the controller through every step up to (not including)
// the agreement.
func advanceToAgreement(t *testing.T, c *Controller) {
	t.Helper()
	ctx := context.Background()
	for _, upd := range []dto.StepUpdate{basicsUpdate(), locationUpdate(), photosUpdate(), servicesUpdate(), optionalUpdate(), reviewUpdate()} {
		res, verrs, err := c.Advance(ctx, upd)
		require.NoError(t, err)
		require.False(t, verrs.Any(), "unexpected validation errors at %s: %v", upd.Step, verrs)
		require.True(t, res.ScrollReset)
	}
	require.Equal(t, model.StepAgreement, c.CurrentStep().ID)
}

func TestAdvanceValidPayloadMovesForward(t *testing.T) {
	repo := newMemoryRepo()
	c := newTestController(repo, &fakeGateway{})

	res, verrs, err := c.Advance(context.Background(), basicsUpdate())
	require.NoError(t, err)
	require.False(t, verrs.Any())
	assert.True(t, res.ScrollReset)
	assert.Equal(t, 1, c.StepIndex())
	assert.Equal(t, "Acme Clinic", c.Draft().PracticeName)
}

func TestAdvanceInvalidPayloadMutatesNothing(t *testing.T) {
	repo := newMemoryRepo()
	c := newTestController(repo, &fakeGateway{})
	require.NoError(t, ignoreResult(c.Advance(context.Background(), basicsUpdate())))

	bad := locationUpdate()
	bad.Location.Zip = "1234"
	res, verrs, err := c.Advance(context.Background(), bad)

	require.NoError(t, err)
	require.Nil(t, res)
	assert.Equal(t, "Invalid ZIP code", verrs["zip"])
	assert.Equal(t, 1, c.StepIndex(), "position unchanged on validation failure")
	assert.Empty(t, c.Draft().Address.Street, "draft unchanged on validation failure")
	assert.Equal(t, 1, repo.saves, "no snapshot written for the failed transition")
}

func TestAdvanceStepMismatchRejected(t *testing.T) {
	c := newTestController(newMemoryRepo(), &fakeGateway{})

	_, _, err := c.Advance(context.Background(), locationUpdate())
	assert.ErrorIs(t, err, pkgerrors.StepMismatch)
	assert.Equal(t, 0, c.StepIndex())
}

func TestSnapshotPersistedAfterTransition(t *testing.T) {
	repo := newMemoryRepo()
	c := newTestController(repo, &fakeGateway{})
	ctx := context.Background()

	_, _, err := c.Advance(ctx, basicsUpdate())
	require.NoError(t, err)
	_, _, err = c.Advance(ctx, locationUpdate())
	require.NoError(t, err)
	_, _, err = c.Advance(ctx, photosUpdate())
	require.NoError(t, err)

	snap := repo.snaps["sess-1"]
	require.NotNil(t, snap)
	assert.Equal(t, 3, snap.StepIndex, "snapshot records the post-advance position")
	assert.Equal(t, "Acme Clinic", snap.Draft.PracticeName)

	require.Len(t, snap.Draft.Photos, 1)
	assert.Nil(t, snap.Draft.Photos[0].Data, "photo payloads never persisted")
	assert.Equal(t, 1, snap.Draft.PhotoCount)
}

func TestStorageFailureDoesNotBlockAdvance(t *testing.T) {
	repo := newMemoryRepo()
	repo.saveErr = errors.New("redis: connection refused")
	c := newTestController(repo, &fakeGateway{})

	res, verrs, err := c.Advance(context.Background(), basicsUpdate())
	require.NoError(t, err, "snapshot failure must be swallowed")
	require.False(t, verrs.Any())
	assert.True(t, res.ScrollReset)
	assert.Equal(t, 1, c.StepIndex())
}

func TestRestoreResumesPosition(t *testing.T) {
	repo := newMemoryRepo()
	c := newTestController(repo, &fakeGateway{})
	ctx := context.Background()
	_, _, err := c.Advance(ctx, basicsUpdate())
	require.NoError(t, err)
	_, _, err = c.Advance(ctx, locationUpdate())
	require.NoError(t, err)

	snap, loadErr := repo.Load(ctx, "sess-1")
	require.NoError(t, loadErr)

	resumed := newTestController(repo, &fakeGateway{})
	resumed.Restore(snap)

	assert.Equal(t, 2, resumed.StepIndex())
	assert.Equal(t, model.StepPhotos, resumed.CurrentStep().ID)
	assert.Equal(t, "Acme Clinic", resumed.Draft().PracticeName)
	assert.Equal(t, "Springfield", resumed.Draft().Address.City)
}

func TestRetreat(t *testing.T) {
	c := newTestController(newMemoryRepo(), &fakeGateway{})

	assert.False(t, c.Retreat(), "retreat from the first step is a no-op")

	_, _, err := c.Advance(context.Background(), basicsUpdate())
	require.NoError(t, err)
	assert.True(t, c.Retreat())
	assert.Equal(t, 0, c.StepIndex())
	assert.Equal(t, "Acme Clinic", c.Draft().PracticeName, "retreat keeps merged data")
}

func TestRetreatSurvivesRestore(t *testing.T) {
	repo := newMemoryRepo()
	c := newTestController(repo, &fakeGateway{})
	ctx := context.Background()
	for _, upd := range []dto.StepUpdate{basicsUpdate(), locationUpdate()} {
		_, _, err := c.Advance(ctx, upd)
		require.NoError(t, err)
	}

	require.True(t, c.Retreat())
	c.Persist(ctx)

	snap, err := repo.Load(ctx, "sess-1")
	require.NoError(t, err)
	resumed := newTestController(repo, &fakeGateway{})
	resumed.Restore(snap)

	assert.Equal(t, 1, resumed.StepIndex(), "retreated position survives a reload")
	assert.Equal(t, model.StepLocation, resumed.CurrentStep().ID)
}

func TestSeedSurvivesRestore(t *testing.T) {
	repo := newMemoryRepo()
	c := newTestController(repo, &fakeGateway{})
	ctx := context.Background()

	c.Seed(&model.Business{PlaceID: "mock-acme-clinic", Name: "Acme Clinic", Phone: "(555) 123-4567"})
	c.Persist(ctx)

	resumed := newTestController(repo, &fakeGateway{})
	snap, err := repo.Load(ctx, "sess-1")
	require.NoError(t, err)
	resumed.Restore(snap)

	assert.Equal(t, "Acme Clinic", resumed.Draft().PracticeName, "seeded fields survive a reload")
	assert.Equal(t, "mock-acme-clinic", resumed.Draft().PlaceID)
	assert.True(t, resumed.Draft().Prefilled)
}

func TestJumpTo(t *testing.T) {
	ctx := context.Background()

	t.Run("forward over skippable step allowed", func(t *testing.T) {
		c := newTestController(newMemoryRepo(), &fakeGateway{})
		for _, upd := range []dto.StepUpdate{basicsUpdate(), locationUpdate(), photosUpdate(), servicesUpdate()} {
			_, _, err := c.Advance(ctx, upd)
			require.NoError(t, err)
		}
		require.Equal(t, model.StepOptionalDetails, c.CurrentStep().ID)

		require.NoError(t, c.JumpTo(model.StepReview))
		assert.Equal(t, model.StepReview, c.CurrentStep().ID)
	})

	t.Run("forward over required step rejected", func(t *testing.T) {
		c := newTestController(newMemoryRepo(), &fakeGateway{})
		err := c.JumpTo(model.StepServices)
		assert.ErrorIs(t, err, pkgerrors.StepNotSkippable)
		assert.Equal(t, 0, c.StepIndex())
	})

	t.Run("backward always allowed", func(t *testing.T) {
		c := newTestController(newMemoryRepo(), &fakeGateway{})
		for _, upd := range []dto.StepUpdate{basicsUpdate(), locationUpdate(), photosUpdate()} {
			_, _, err := c.Advance(ctx, upd)
			require.NoError(t, err)
		}
		require.NoError(t, c.JumpTo(model.StepBasics))
		assert.Equal(t, 0, c.StepIndex())
	})

	t.Run("unknown step rejected", func(t *testing.T) {
		c := newTestController(newMemoryRepo(), &fakeGateway{})
		assert.ErrorIs(t, c.JumpTo("payment"), pkgerrors.UnknownStep)
	})
}

func TestTerminalStepSubmits(t *testing.T) {
	repo := newMemoryRepo()
	gw := &fakeGateway{providerID: 778899}
	c := newTestController(repo, gw)
	advanceToAgreement(t, c)

	res, verrs, err := c.Advance(context.Background(), agreementUpdate())
	require.NoError(t, err)
	require.False(t, verrs.Any())

	assert.True(t, res.Completed)
	assert.EqualValues(t, 778899, res.ProviderID)
	assert.Equal(t, 1, gw.submits)
	assert.Equal(t, model.ProviderStatusPending, gw.lastDraft.Status)
	assert.Equal(t, 1, repo.clears, "snapshot cleared after successful submission")
	assert.NotContains(t, repo.snaps, "sess-1")
}

func TestSubmissionFailureKeepsDraft(t *testing.T) {
	repo := newMemoryRepo()
	gw := &fakeGateway{err: errors.New("postgres unavailable")}
	c := newTestController(repo, gw)
	advanceToAgreement(t, c)

	_, verrs, err := c.Advance(context.Background(), agreementUpdate())
	require.Error(t, err)
	require.False(t, verrs.Any())

	assert.Equal(t, model.ProviderStatusDraft, c.Draft().Status, "status rolled back for resubmission")
	assert.Equal(t, 0, repo.clears)
	snap := repo.snaps["sess-1"]
	require.NotNil(t, snap, "draft retained after failed submission")
	assert.Equal(t, model.ProviderStatusDraft, snap.Draft.Status)

	// The user can retry without redoing the wizard.
	gw.err = nil
	gw.providerID = 42
	res, verrs, err := c.Advance(context.Background(), agreementUpdate())
	require.NoError(t, err)
	require.False(t, verrs.Any())
	assert.True(t, res.Completed)
}

func TestSeedFillsOnlyEmptyFields(t *testing.T) {
	c := newTestController(newMemoryRepo(), &fakeGateway{})
	c.Draft().PracticeName = "My Typed Name"

	c.Seed(&model.Business{
		PlaceID:       "place-123",
		Name:          "Google Says Otherwise",
		Phone:         "555-987-6543",
		Address:       model.Address{Street: "7 Elm St", City: "Springfield", State: "IL", Zip: "62704"},
		ProviderTypes: []model.ProviderType{model.ProviderTypeDental},
	})

	d := c.Draft()
	assert.Equal(t, "My Typed Name", d.PracticeName, "typed value wins over lookup")
	assert.Equal(t, "555-987-6543", d.Phone)
	assert.Equal(t, "7 Elm St", d.Address.Street)
	assert.True(t, d.Prefilled)
	assert.Equal(t, "place-123", d.PlaceID)
}

func ignoreResult(_ *Result, _ ValidationErrors, err error) error { return err }
