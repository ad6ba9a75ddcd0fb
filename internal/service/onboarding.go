package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"FindrHealth/config"
	"FindrHealth/internal/cache"
	"FindrHealth/internal/catalog"
	"FindrHealth/internal/model"
	"FindrHealth/internal/model/dto"
	"FindrHealth/internal/wizard"
	pkgerrors "FindrHealth/pkg/errors"
	"FindrHealth/pkg/logger"
	"FindrHealth/pkg/metrics"
)

var (
	onboardingService *OnboardingService
	onboardingOnce    sync.Once
)

func Onboarding() *OnboardingService {
	onboardingOnce.Do(func() {
		onboardingService = &OnboardingService{
			registry: wizard.DefaultRegistry(),
			repo:     cache.DraftStore{},
			gateway:  Provider(),
			sessions: redisSessionStore{},
		}
	})
	return onboardingService
}

// sessionStore holds the onboarding session records.
type sessionStore interface {
	GetSession(ctx context.Context, sessionID string) (*model.OnboardingSession, error)
	SetSession(ctx context.Context, session *model.OnboardingSession) error
	DeleteSession(ctx context.Context, sessionID string) error
}

type redisSessionStore struct{}

func (redisSessionStore) GetSession(ctx context.Context, sessionID string) (*model.OnboardingSession, error) {
	return cache.GetSession(ctx, sessionID)
}

func (redisSessionStore) SetSession(ctx context.Context, session *model.OnboardingSession) error {
	return cache.SetSession(ctx, session)
}

func (redisSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return cache.DeleteSession(ctx, sessionID)
}

// OnboardingService drives wizard controllers: one per session, rebuilt from
// the snapshot on every request, guarded by a per-session Redis lock.
type OnboardingService struct {
	registry *wizard.Registry
	repo     wizard.DraftRepository
	gateway  wizard.SubmissionGateway
	sessions sessionStore
}

const transitionLockTTL = 10 * time.Second

func (s *OnboardingService) limits() wizard.Limits {
	return wizard.Limits{
		PhotoMaxCount: config.Cfg.PhotoMaxCount,
		PhotoMaxBytes: config.Cfg.PhotoMaxBytes,
		MinSelections: config.Cfg.MinSelections,
	}
}

// loadController verifies the session and rebuilds its controller from the
// persisted snapshot. claimEmail is the email claim carried by the bearer
// token; a token issued before the session was re-bound to a different email
// no longer matches the record and is rejected.
func (s *OnboardingService) loadController(ctx context.Context, sessionID, claimEmail string) (*wizard.Controller, *model.OnboardingSession, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, pkgerrors.SessionNotFound
	}
	if !session.EmailVerified {
		return nil, nil, pkgerrors.Unauthorized
	}
	if claimEmail != "" && !strings.EqualFold(claimEmail, session.Email) {
		return nil, nil, pkgerrors.SessionNotOwned
	}

	ctrl := wizard.NewController(sessionID, s.registry, s.repo, s.gateway, s.limits(), logger.Logger)

	snap, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		// A lost snapshot restarts the wizard rather than blocking it.
		logger.Logger.Warn("Failed to load draft snapshot",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}
	ctrl.Restore(snap)

	if ctrl.Draft().Email == "" {
		ctrl.Draft().Email = session.Email
	}

	return ctrl, session, nil
}

func (s *OnboardingService) state(ctrl *wizard.Controller) *dto.WizardStateData {
	draft := ctrl.Draft()
	step := ctrl.CurrentStep()

	// Uploaded payloads never survive a snapshot; only imported photos keep
	// a usable reference.
	needReattach := false
	if draft.PhotoCount > 0 {
		needReattach = true
		for _, p := range draft.Photos {
			if len(p.Data) > 0 || p.Reference != "" || p.URL != "" {
				needReattach = false
				break
			}
		}
	}

	return &dto.WizardStateData{
		CurrentStep:        step.ID,
		CurrentStepIndex:   ctrl.StepIndex(),
		TotalSteps:         ctrl.TotalSteps(),
		StepName:           step.Name,
		Draft:              draft.Snapshot(),
		PhotosNeedReattach: needReattach,
	}
}

// CreateSession initializes (or resumes) the wizard for a verified session,
// optionally seeding the draft from a places selection.
func (s *OnboardingService) CreateSession(
	ctx context.Context,
	sessionID string,
	claimEmail string,
	req *dto.CreateSessionRequest,
) (*dto.CreateSessionData, error) {
	ctrl, session, err := s.loadController(ctx, sessionID, claimEmail)
	if err != nil {
		return nil, err
	}

	resumed := ctrl.StepIndex() > 0 || ctrl.Draft().PracticeName != ""

	if !resumed && req.PlaceID != "" && !req.SkipLookup {
		business, err := Places().BusinessForSeed(ctx, req.PlaceID)
		if err != nil {
			// Seeding is best-effort; the user can type everything in.
			logger.Logger.Warn("Failed to seed draft from place",
				zap.String("session_id", sessionID),
				zap.String("place_id", req.PlaceID),
				zap.Error(err),
			)
		} else {
			ctrl.Seed(business)
			ctrl.Persist(ctx)
			session.PlaceID = req.PlaceID
			if err := s.sessions.SetSession(ctx, session); err != nil {
				logger.Logger.Warn("Failed to record place selection on session",
					zap.String("session_id", sessionID),
					zap.Error(err),
				)
			}
		}
	}

	return &dto.CreateSessionData{
		SessionID: sessionID,
		Resumed:   resumed,
		State:     s.state(ctrl),
	}, nil
}

// State returns the current wizard position and draft snapshot.
func (s *OnboardingService) State(ctx context.Context, sessionID, claimEmail string) (*dto.WizardStateData, error) {
	ctrl, _, err := s.loadController(ctx, sessionID, claimEmail)
	if err != nil {
		return nil, err
	}
	return s.state(ctrl), nil
}

// Advance applies one step transition under the session lock.
func (s *OnboardingService) Advance(
	ctx context.Context,
	sessionID string,
	claimEmail string,
	upd dto.StepUpdate,
) (*dto.AdvanceData, wizard.ValidationErrors, error) {
	acquired, err := cache.TryLock(ctx, sessionID, transitionLockTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to acquire session lock: %w", err)
	}
	if !acquired {
		return nil, nil, pkgerrors.SessionInProgress
	}
	defer func() {
		if err := cache.Unlock(ctx, sessionID); err != nil {
			logger.Logger.Warn("Failed to release session lock",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		}
	}()

	ctrl, _, err := s.loadController(ctx, sessionID, claimEmail)
	if err != nil {
		return nil, nil, err
	}

	result, verrs, err := ctrl.Advance(ctx, upd)
	if verrs.Any() {
		return nil, verrs, nil
	}
	if err != nil {
		return nil, nil, err
	}

	metrics.RecordStepCompleted(ctx, string(upd.Step))

	if result.Completed {
		s.sessions.DeleteSession(ctx, sessionID)
		return &dto.AdvanceData{
			Completed:  true,
			ProviderID: strconv.FormatInt(result.ProviderID, 10),
		}, nil, nil
	}

	return &dto.AdvanceData{
		State:       s.state(ctrl),
		ScrollReset: result.ScrollReset,
	}, nil, nil
}

// Back moves one step backward without validation.
func (s *OnboardingService) Back(ctx context.Context, sessionID, claimEmail string) (*dto.WizardStateData, error) {
	ctrl, _, err := s.loadController(ctx, sessionID, claimEmail)
	if err != nil {
		return nil, err
	}

	if ctrl.Retreat() {
		ctrl.Persist(ctx)
	}

	return s.state(ctrl), nil
}

// Jump repositions across skippable steps.
func (s *OnboardingService) Jump(ctx context.Context, sessionID, claimEmail string, step model.StepID) (*dto.WizardStateData, error) {
	ctrl, _, err := s.loadController(ctx, sessionID, claimEmail)
	if err != nil {
		return nil, err
	}

	if err := ctrl.JumpTo(step); err != nil {
		return nil, err
	}
	ctrl.Persist(ctx)

	return s.state(ctrl), nil
}

// Catalog returns the resolved services for the draft's provider types, with
// the session's overrides applied.
func (s *OnboardingService) Catalog(ctx context.Context, sessionID, claimEmail string) (*dto.CatalogData, error) {
	ctrl, _, err := s.loadController(ctx, sessionID, claimEmail)
	if err != nil {
		return nil, err
	}

	draft := ctrl.Draft()

	selected := make(map[string]model.ServiceSelection, len(draft.Selections))
	for _, sel := range draft.Selections {
		selected[sel.ServiceID] = sel
	}

	services := catalog.Resolve(draft.ProviderTypes)
	out := make([]dto.CatalogServiceData, 0, len(services))
	for _, svc := range services {
		item := dto.CatalogServiceData{
			ID:          svc.ID,
			Name:        svc.Name,
			Description: svc.Description,
			Duration:    svc.Duration,
			Price:       svc.Price,
			Category:    svc.Category,
		}
		if sel, ok := selected[svc.ID]; ok {
			item.Selected = true
			eff, _ := catalog.Effective(sel)
			if eff.Price != svc.Price || eff.Duration != svc.Duration || eff.Name != svc.Name || eff.Description != svc.Description {
				item.Overridden = true
				item.Name = eff.Name
				item.Description = eff.Description
				item.Duration = eff.Duration
				item.Price = eff.Price
			}
		}
		out = append(out, item)
	}

	return &dto.CatalogData{Services: out}, nil
}
