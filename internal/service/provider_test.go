package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"FindrHealth/internal/model"
	pkgerrors "FindrHealth/pkg/errors"
	"FindrHealth/pkg/logger"
	"FindrHealth/pkg/snowflake"
	"FindrHealth/pkg/token"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	if err := snowflake.Init(1, 1); err != nil {
		panic(err)
	}
	if err := token.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeProviderStore is an in-memory ProviderStore with programmable failures.
type fakeProviderStore struct {
	byID      map[int64]*model.Provider
	byPlace   map[string]*model.Provider
	created   *model.Provider
	createErr error
	getCalls  int
}

func (f *fakeProviderStore) Create(ctx context.Context, p *model.Provider) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = p
	return nil
}

func (f *fakeProviderStore) GetByPublicID(ctx context.Context, publicID int64) (*model.Provider, error) {
	f.getCalls++
	if p, ok := f.byID[publicID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProviderStore) GetByPlaceID(ctx context.Context, placeID string) (*model.Provider, error) {
	if p, ok := f.byPlace[placeID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeProfileCache struct {
	entries map[string]*model.Provider
	getErr  error
	sets    int
}

func (f *fakeProfileCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if f.getErr != nil {
		return false, f.getErr
	}
	p, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	*dest.(*model.Provider) = *p
	return true, nil
}

func (f *fakeProfileCache) Set(ctx context.Context, key string, value interface{}) error {
	if f.entries == nil {
		f.entries = make(map[string]*model.Provider)
	}
	f.entries[key] = value.(*model.Provider)
	f.sets++
	return nil
}

func newProviderService(store ProviderStore, profiles profileCache) *ProviderService {
	return &ProviderService{store: store, profiles: profiles}
}

func storedProvider(publicID int64) *model.Provider {
	return &model.Provider{
		PublicID:     publicID,
		PracticeName: "Acme Clinic",
		Email:        "owner@acmeclinic.com",
		Status:       model.ProviderStatusPending,
	}
}

func TestGetProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id rejected before any lookup", func(t *testing.T) {
		store := &fakeProviderStore{}
		svc := newProviderService(store, &fakeProfileCache{})

		_, err := svc.GetProvider(ctx, "not-a-number")
		assert.ErrorIs(t, err, pkgerrors.InvalidProviderID)
		assert.Zero(t, store.getCalls)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		store := &fakeProviderStore{}
		profiles := &fakeProfileCache{entries: map[string]*model.Provider{
			"778899": storedProvider(778899),
		}}
		svc := newProviderService(store, profiles)

		data, err := svc.GetProvider(ctx, "778899")
		require.NoError(t, err)
		assert.Equal(t, "Acme Clinic", data.PracticeName)
		assert.Zero(t, store.getCalls, "cached profile must not reach the store")
	})

	t.Run("miss reads the store and backfills the cache", func(t *testing.T) {
		store := &fakeProviderStore{byID: map[int64]*model.Provider{
			778899: storedProvider(778899),
		}}
		profiles := &fakeProfileCache{}
		svc := newProviderService(store, profiles)

		data, err := svc.GetProvider(ctx, "778899")
		require.NoError(t, err)
		assert.Equal(t, "778899", data.ProviderID)
		assert.Equal(t, 1, store.getCalls)
		assert.Equal(t, 1, profiles.sets, "store hit backfills the cache")
	})

	t.Run("unknown id maps to provider not found", func(t *testing.T) {
		svc := newProviderService(&fakeProviderStore{}, &fakeProfileCache{})

		_, err := svc.GetProvider(ctx, "42")
		assert.ErrorIs(t, err, pkgerrors.ProviderNotFound)
	})

	t.Run("cache failure falls through to the store", func(t *testing.T) {
		store := &fakeProviderStore{byID: map[int64]*model.Provider{
			778899: storedProvider(778899),
		}}
		svc := newProviderService(store, &fakeProfileCache{getErr: errors.New("redis: connection refused")})

		data, err := svc.GetProvider(ctx, "778899")
		require.NoError(t, err)
		assert.Equal(t, "Acme Clinic", data.PracticeName)
	})
}

func submittableDraft() *model.DraftRecord {
	d := model.NewDraftRecord()
	d.PracticeName = "Acme Clinic"
	d.Email = "owner@acmeclinic.com"
	d.ProviderTypes = []model.ProviderType{model.ProviderTypeMedical}
	return d
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the draft as a pending provider", func(t *testing.T) {
		store := &fakeProviderStore{}
		svc := newProviderService(store, &fakeProfileCache{})

		providerID, err := svc.Submit(ctx, "sess-1", submittableDraft())
		require.NoError(t, err)
		assert.Positive(t, providerID)

		require.NotNil(t, store.created)
		assert.Equal(t, providerID, store.created.PublicID)
		assert.Equal(t, model.ProviderStatusPending, store.created.Status)
		assert.False(t, store.created.SubmittedAt.IsZero())
	})

	t.Run("insert failure maps to submission failed", func(t *testing.T) {
		store := &fakeProviderStore{createErr: errors.New("postgres unavailable")}
		svc := newProviderService(store, &fakeProfileCache{})

		_, err := svc.Submit(ctx, "sess-1", submittableDraft())
		assert.ErrorIs(t, err, pkgerrors.SubmissionFailed)
	})

	t.Run("duplicate place does not block submission", func(t *testing.T) {
		draft := submittableDraft()
		draft.PlaceID = "mock-acme-clinic"
		store := &fakeProviderStore{byPlace: map[string]*model.Provider{
			"mock-acme-clinic": storedProvider(111222),
		}}
		svc := newProviderService(store, &fakeProfileCache{})

		providerID, err := svc.Submit(ctx, "sess-1", draft)
		require.NoError(t, err)
		assert.Positive(t, providerID)
	})
}
