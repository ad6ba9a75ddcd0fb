package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"FindrHealth/config"
	"FindrHealth/internal/cache"
	"FindrHealth/internal/model"
	"FindrHealth/internal/model/dto"
	"FindrHealth/pkg/email"
	pkgerrors "FindrHealth/pkg/errors"
	"FindrHealth/pkg/logger"
	"FindrHealth/pkg/metrics"
	"FindrHealth/pkg/token"
	"FindrHealth/utils"
)

var (
	verificationService *VerificationService
	verifyOnce          sync.Once
)

func Verification() *VerificationService {
	verifyOnce.Do(func() {
		verificationService = &VerificationService{
			store:    redisVerificationStore{},
			sendCode: email.SendVerificationCode,
		}
	})

	return verificationService
}

// verificationStore holds codes, attempt counters, lockouts, and sessions.
type verificationStore interface {
	GetSession(ctx context.Context, sessionID string) (*model.OnboardingSession, error)
	SetSession(ctx context.Context, session *model.OnboardingSession) error
	SetCode(ctx context.Context, sessionID, code string) error
	GetCode(ctx context.Context, sessionID string) (string, error)
	DeleteCode(ctx context.Context, sessionID string) error
	IncrAttempts(ctx context.Context, sessionID string) (int, error)
	IncrSendCount(ctx context.Context, emailHash string) (int, error)
	SetLockout(ctx context.Context, sessionID string) error
	IsLockedOut(ctx context.Context, sessionID string) (bool, error)
}

// redisVerificationStore delegates to the cache package.
type redisVerificationStore struct{}

func (redisVerificationStore) GetSession(ctx context.Context, sessionID string) (*model.OnboardingSession, error) {
	return cache.GetSession(ctx, sessionID)
}

func (redisVerificationStore) SetSession(ctx context.Context, session *model.OnboardingSession) error {
	return cache.SetSession(ctx, session)
}

func (redisVerificationStore) SetCode(ctx context.Context, sessionID, code string) error {
	return cache.SetCode(ctx, sessionID, code)
}

func (redisVerificationStore) GetCode(ctx context.Context, sessionID string) (string, error) {
	return cache.GetCode(ctx, sessionID)
}

func (redisVerificationStore) DeleteCode(ctx context.Context, sessionID string) error {
	return cache.DeleteCode(ctx, sessionID)
}

func (redisVerificationStore) IncrAttempts(ctx context.Context, sessionID string) (int, error) {
	return cache.IncrAttempts(ctx, sessionID)
}

func (redisVerificationStore) IncrSendCount(ctx context.Context, emailHash string) (int, error) {
	return cache.IncrSendCount(ctx, emailHash)
}

func (redisVerificationStore) SetLockout(ctx context.Context, sessionID string) error {
	return cache.SetLockout(ctx, sessionID)
}

func (redisVerificationStore) IsLockedOut(ctx context.Context, sessionID string) (bool, error) {
	return cache.IsLockedOut(ctx, sessionID)
}

type VerificationService struct {
	store    verificationStore
	sendCode func(ctx context.Context, to, code string, expireMinutes int) error
}

func generateCode() string {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return fmt.Sprintf("%06d", time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("%06d", n.Int64())
}

// RequestCode issues a fresh verification code for the session and emails it
// to the business contact address. A missing session ID starts a new session;
// re-requesting replaces the active code and resets the attempt allowance.
func (s *VerificationService) RequestCode(
	ctx context.Context,
	sessionID string,
	emailAddr string,
) (*dto.SendCodeData, error) {
	if !utils.ValidateEmail(emailAddr) {
		return nil, pkgerrors.InvalidEmail
	}

	emailHash := utils.HashEmail(emailAddr)

	count, err := s.store.IncrSendCount(ctx, emailHash)
	if err != nil {
		return nil, fmt.Errorf("failed to check send count: %w", err)
	}
	if count > config.Cfg.VerificationMaxDaily {
		return nil, pkgerrors.VerificationRateLimited
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
		session := &model.OnboardingSession{
			SessionID: sessionID,
			Email:     emailAddr,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.store.SetSession(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
	} else {
		session, err := s.store.GetSession(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if session == nil {
			return nil, pkgerrors.SessionNotFound
		}
		if session.Email != emailAddr {
			session.Email = emailAddr
			session.EmailVerified = false
			if err := s.store.SetSession(ctx, session); err != nil {
				return nil, fmt.Errorf("failed to update session: %w", err)
			}
		}
	}

	code := generateCode()
	if err := s.store.SetCode(ctx, sessionID, code); err != nil {
		return nil, fmt.Errorf("failed to store verification code: %w", err)
	}

	expireMinutes := config.Cfg.VerificationExpireSeconds / 60
	if err := s.sendCode(ctx, emailAddr, code, expireMinutes); err != nil {
		// No code in Redis means no stale code a later send could collide
		// with.
		s.store.DeleteCode(ctx, sessionID)
		logger.Logger.Error("Failed to send verification email",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, pkgerrors.EmailDeliveryFailed
	}

	metrics.RecordVerificationSent(ctx)

	expiresAt := time.Now().Add(time.Duration(config.Cfg.VerificationExpireSeconds) * time.Second)
	return &dto.SendCodeData{
		Success:   true,
		SessionID: sessionID,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

// SubmitCode checks the code. On success the session is marked verified and
// an onboarding token is issued; on the final failed attempt the session is
// locked until a new code is requested.
func (s *VerificationService) SubmitCode(
	ctx context.Context,
	sessionID string,
	code string,
) (*dto.VerifyCodeData, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, pkgerrors.SessionNotFound
	}

	locked, err := s.store.IsLockedOut(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check lockout: %w", err)
	}
	if locked {
		return nil, pkgerrors.VerificationLockedOut
	}

	storedCode, err := s.store.GetCode(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get verification code: %w", err)
	}
	if storedCode == "" {
		return nil, pkgerrors.VerificationCodeExpired
	}

	if storedCode != code {
		attempts, err := s.store.IncrAttempts(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to count attempt: %w", err)
		}

		remaining := config.Cfg.VerificationMaxAttempts - attempts
		if remaining <= 0 {
			s.store.DeleteCode(ctx, sessionID)
			if err := s.store.SetLockout(ctx, sessionID); err != nil {
				logger.Logger.Error("Failed to set verification lockout",
					zap.String("session_id", sessionID),
					zap.Error(err),
				)
			}
			return nil, pkgerrors.VerificationLockedOut
		}

		return &dto.VerifyCodeData{
			Success:           false,
			AttemptsRemaining: &remaining,
		}, pkgerrors.VerificationCodeInvalid
	}

	s.store.DeleteCode(ctx, sessionID)

	session.EmailVerified = true
	if err := s.store.SetSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to mark session verified: %w", err)
	}

	tokenString, expiresIn, err := token.GenerateSessionToken(sessionID, session.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	metrics.RecordVerificationSucceeded(ctx)

	return &dto.VerifyCodeData{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: expiresIn,
	}, nil
}
