package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FindrHealth/internal/model"
	pkgerrors "FindrHealth/pkg/errors"
)

// fakeVerificationStore mirrors the cache semantics in memory: issuing a new
// code resets the attempt counter, deleting a code clears it too.
type fakeVerificationStore struct {
	sessions   map[string]*model.OnboardingSession
	codes      map[string]string
	attempts   map[string]int
	sendCounts map[string]int
	locked     map[string]bool
}

func newFakeVerificationStore() *fakeVerificationStore {
	return &fakeVerificationStore{
		sessions:   make(map[string]*model.OnboardingSession),
		codes:      make(map[string]string),
		attempts:   make(map[string]int),
		sendCounts: make(map[string]int),
		locked:     make(map[string]bool),
	}
}

func (f *fakeVerificationStore) GetSession(ctx context.Context, sessionID string) (*model.OnboardingSession, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeVerificationStore) SetSession(ctx context.Context, session *model.OnboardingSession) error {
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeVerificationStore) SetCode(ctx context.Context, sessionID, code string) error {
	f.codes[sessionID] = code
	delete(f.attempts, sessionID)
	return nil
}

func (f *fakeVerificationStore) GetCode(ctx context.Context, sessionID string) (string, error) {
	return f.codes[sessionID], nil
}

func (f *fakeVerificationStore) DeleteCode(ctx context.Context, sessionID string) error {
	delete(f.codes, sessionID)
	delete(f.attempts, sessionID)
	return nil
}

func (f *fakeVerificationStore) IncrAttempts(ctx context.Context, sessionID string) (int, error) {
	f.attempts[sessionID]++
	return f.attempts[sessionID], nil
}

func (f *fakeVerificationStore) IncrSendCount(ctx context.Context, emailHash string) (int, error) {
	f.sendCounts[emailHash]++
	return f.sendCounts[emailHash], nil
}

func (f *fakeVerificationStore) SetLockout(ctx context.Context, sessionID string) error {
	f.locked[sessionID] = true
	return nil
}

func (f *fakeVerificationStore) IsLockedOut(ctx context.Context, sessionID string) (bool, error) {
	return f.locked[sessionID], nil
}

type sentCode struct {
	to   string
	code string
}

func newVerificationService(store *fakeVerificationStore) (*VerificationService, *[]sentCode) {
	sent := &[]sentCode{}
	svc := &VerificationService{
		store: store,
		sendCode: func(ctx context.Context, to, code string, expireMinutes int) error {
			*sent = append(*sent, sentCode{to: to, code: code})
			return nil
		},
	}
	return svc, sent
}

func verifiedSession(sessionID, email string) *model.OnboardingSession {
	return &model.OnboardingSession{
		SessionID: sessionID,
		Email:     email,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func TestRequestCode(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid email rejected", func(t *testing.T) {
		svc, sent := newVerificationService(newFakeVerificationStore())

		_, err := svc.RequestCode(ctx, "", "not-an-email")
		assert.ErrorIs(t, err, pkgerrors.InvalidEmail)
		assert.Empty(t, *sent)
	})

	t.Run("empty session id mints a session and emails the code", func(t *testing.T) {
		store := newFakeVerificationStore()
		svc, sent := newVerificationService(store)

		data, err := svc.RequestCode(ctx, "", "owner@acmeclinic.com")
		require.NoError(t, err)
		assert.True(t, data.Success)
		assert.NotEmpty(t, data.SessionID)

		require.Contains(t, store.sessions, data.SessionID)
		assert.Equal(t, "owner@acmeclinic.com", store.sessions[data.SessionID].Email)

		require.Len(t, *sent, 1)
		assert.Equal(t, "owner@acmeclinic.com", (*sent)[0].to)
		assert.Equal(t, store.codes[data.SessionID], (*sent)[0].code)
		assert.Len(t, (*sent)[0].code, 6)
	})

	t.Run("unknown session id rejected", func(t *testing.T) {
		svc, _ := newVerificationService(newFakeVerificationStore())

		_, err := svc.RequestCode(ctx, "missing", "owner@acmeclinic.com")
		assert.ErrorIs(t, err, pkgerrors.SessionNotFound)
	})

	t.Run("daily send cap enforced per email", func(t *testing.T) {
		store := newFakeVerificationStore()
		svc, _ := newVerificationService(store)

		var lastErr error
		var sends int
		for i := 0; i < 11; i++ {
			_, lastErr = svc.RequestCode(ctx, "", "owner@acmeclinic.com")
			if lastErr == nil {
				sends++
			}
		}

		assert.ErrorIs(t, lastErr, pkgerrors.VerificationRateLimited)
		assert.Equal(t, 10, sends)
	})

	t.Run("delivery failure clears the stored code", func(t *testing.T) {
		store := newFakeVerificationStore()
		svc := &VerificationService{
			store: store,
			sendCode: func(ctx context.Context, to, code string, expireMinutes int) error {
				return errors.New("smtp: connection refused")
			},
		}

		session := verifiedSession("sess-1", "owner@acmeclinic.com")
		store.sessions["sess-1"] = session

		_, err := svc.RequestCode(ctx, "sess-1", "owner@acmeclinic.com")
		assert.ErrorIs(t, err, pkgerrors.EmailDeliveryFailed)
		assert.NotContains(t, store.codes, "sess-1")
	})

	t.Run("re-request resets the attempt allowance", func(t *testing.T) {
		store := newFakeVerificationStore()
		svc, _ := newVerificationService(store)
		store.sessions["sess-1"] = verifiedSession("sess-1", "owner@acmeclinic.com")
		store.codes["sess-1"] = "111111"

		for i := 0; i < 2; i++ {
			_, err := svc.SubmitCode(ctx, "sess-1", "000000")
			assert.ErrorIs(t, err, pkgerrors.VerificationCodeInvalid)
		}

		_, err := svc.RequestCode(ctx, "sess-1", "owner@acmeclinic.com")
		require.NoError(t, err)

		result, err := svc.SubmitCode(ctx, "sess-1", "000000")
		require.ErrorIs(t, err, pkgerrors.VerificationCodeInvalid)
		require.NotNil(t, result.AttemptsRemaining)
		assert.Equal(t, 2, *result.AttemptsRemaining, "fresh code carries the full allowance")
	})
}

func TestSubmitCode(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown session rejected", func(t *testing.T) {
		svc, _ := newVerificationService(newFakeVerificationStore())

		_, err := svc.SubmitCode(ctx, "missing", "123456")
		assert.ErrorIs(t, err, pkgerrors.SessionNotFound)
	})

	t.Run("missing code means expired", func(t *testing.T) {
		store := newFakeVerificationStore()
		store.sessions["sess-1"] = verifiedSession("sess-1", "owner@acmeclinic.com")
		svc, _ := newVerificationService(store)

		_, err := svc.SubmitCode(ctx, "sess-1", "123456")
		assert.ErrorIs(t, err, pkgerrors.VerificationCodeExpired)
	})

	t.Run("wrong code burns down attempts then locks", func(t *testing.T) {
		store := newFakeVerificationStore()
		store.sessions["sess-1"] = verifiedSession("sess-1", "owner@acmeclinic.com")
		store.codes["sess-1"] = "111111"
		svc, _ := newVerificationService(store)

		result, err := svc.SubmitCode(ctx, "sess-1", "000000")
		require.ErrorIs(t, err, pkgerrors.VerificationCodeInvalid)
		require.NotNil(t, result.AttemptsRemaining)
		assert.Equal(t, 2, *result.AttemptsRemaining)

		result, err = svc.SubmitCode(ctx, "sess-1", "000000")
		require.ErrorIs(t, err, pkgerrors.VerificationCodeInvalid)
		assert.Equal(t, 1, *result.AttemptsRemaining)

		_, err = svc.SubmitCode(ctx, "sess-1", "000000")
		assert.ErrorIs(t, err, pkgerrors.VerificationLockedOut)
		assert.True(t, store.locked["sess-1"])
		assert.NotContains(t, store.codes, "sess-1", "code burned on lockout")
	})

	t.Run("locked session rejected before the code check", func(t *testing.T) {
		store := newFakeVerificationStore()
		store.sessions["sess-1"] = verifiedSession("sess-1", "owner@acmeclinic.com")
		store.codes["sess-1"] = "111111"
		store.locked["sess-1"] = true
		svc, _ := newVerificationService(store)

		_, err := svc.SubmitCode(ctx, "sess-1", "111111")
		assert.ErrorIs(t, err, pkgerrors.VerificationLockedOut)
		assert.Contains(t, store.codes, "sess-1", "lockout never consumes the code")
	})

	t.Run("correct code verifies the session and issues a token", func(t *testing.T) {
		store := newFakeVerificationStore()
		store.sessions["sess-1"] = verifiedSession("sess-1", "owner@acmeclinic.com")
		store.codes["sess-1"] = "111111"
		svc, _ := newVerificationService(store)

		result, err := svc.SubmitCode(ctx, "sess-1", "111111")
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.NotEmpty(t, result.Token)
		assert.Positive(t, result.ExpiresIn)
		assert.True(t, store.sessions["sess-1"].EmailVerified)
		assert.NotContains(t, store.codes, "sess-1", "code is single use")
	})
}

func TestGenerateCodeFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := generateCode()
		require.Len(t, code, 6)
		require.Regexp(t, `^\d{6}$`, code)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1, "codes vary across issues")
}
