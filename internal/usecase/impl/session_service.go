// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	authGateway    service.AuthGateway
	sessionRepo    repository.SessionRepository
	tokenInspector service.TokenInspector
	minPasswordLen int
	logger         *slog.Logger

	mu             sync.RWMutex
	current        *entity.Session
	listeners      map[int]usecase.SessionListener
	nextListenerID int
}

// SessionServiceParams holds dependencies for the session service, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AuthGateway    service.AuthGateway
	SessionRepo    repository.SessionRepository
	TokenInspector service.TokenInspector
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	minLen := config.DefaultPasswordMinLength
	if params.Config != nil && params.Config.Password != nil && params.Config.Password.MinLength > 0 {
		minLen = params.Config.Password.MinLength
	}

	return &sessionService{
		authGateway:    params.AuthGateway,
		sessionRepo:    params.SessionRepo,
		tokenInspector: params.TokenInspector,
		minPasswordLen: minLen,
		logger:         params.Logger,
		listeners:      make(map[int]usecase.SessionListener),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Rehydrate restores the stored session on startup. Any defect in the stored
// record leaves the client signed out; rehydration never blocks startup on
// the backend.
func (srv *sessionService) Rehydrate(ctx context.Context) error {
	stored, err := srv.sessionRepo.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionNotFound):
			srv.log(ctx).Debug("No stored session to rehydrate")
		case errors.Is(err, repository.ErrCorruptRecord):
			srv.log(ctx).Warn("Stored session is corrupt, discarding", slog.Any("error", err))
			srv.discardStoredSession(ctx)
		default:
			srv.log(ctx).Warn("Failed to load stored session, starting signed out", slog.Any("error", err))
		}

		return nil
	}

	if !stored.Valid() {
		srv.log(ctx).Warn("Stored session is incomplete, discarding")
		srv.discardStoredSession(ctx)

		return nil
	}

	if srv.tokenInspector.Expired(stored.AccessToken) {
		srv.log(ctx).Info("Stored session has expired, discarding", slog.String("email", stored.Profile.Email))
		srv.discardStoredSession(ctx)

		return nil
	}

	stored.SignedInAt = time.Now()
	srv.setSession(stored)
	srv.log(ctx).Info("Session rehydrated", slog.String("email", stored.Profile.Email))

	return nil
}

// SignIn authenticates against the backend and establishes a session.
func (srv *sessionService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SessionOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email and password are required")
	}

	srv.log(ctx).Debug("Starting sign in", slog.String("email", email))

	credentials, profile, err := srv.authGateway.Login(ctx, email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Sign in failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "sign in failed")
	}

	session := &entity.Session{
		AccessToken:  credentials.AccessToken,
		RefreshToken: credentials.RefreshToken,
		Profile:      profile,
		SignedInAt:   time.Now(),
	}

	// Losing the durable copy only costs a re-login after restart, so a
	// storage failure does not abort the sign in.
	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		srv.log(ctx).Warn("Failed to persist session", slog.Any("error", err))
	}

	srv.setSession(session)
	srv.log(ctx).Info("Signed in", slog.String("email", profile.Email))

	return srv.Current(), nil
}

// Register creates a new account. Validation that the original form enforced
// in the UI happens here before any network call.
func (srv *sessionService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.validateRegistration(input); err != nil {
		srv.log(ctx).Warn("Registration validation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	confirmation, err := srv.authGateway.Register(ctx, service.RegistrationForm{
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Email:          strings.TrimSpace(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		Password:       input.Password,
		RepeatPassword: input.RepeatPassword,
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "registration failed")
	}

	srv.log(ctx).Info("Registration submitted", slog.String("email", input.Email))

	return &usecase.RegisterOutput{Confirmation: confirmation}, nil
}

func (srv *sessionService) validateRegistration(input usecase.RegisterInput) error {
	if strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		input.Password == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "first name, last name, email and password are required")
	}
	if len(input.Password) < srv.minPasswordLen {
		return errors.Wrap(domainerrors.ErrPasswordTooShort, "registration rejected locally")
	}
	if input.Password != input.RepeatPassword {
		return errors.Wrap(domainerrors.ErrPasswordMismatch, "registration rejected locally")
	}

	return nil
}

// Activate confirms an account using the emailed uid/token pair.
func (srv *sessionService) Activate(ctx context.Context, uid, token string) error {
	if uid == "" || token == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "activation link is incomplete")
	}

	if err := srv.authGateway.Activate(ctx, uid, token); err != nil {
		srv.log(ctx).Warn("Account activation failed", slog.Any("error", err))

		return errors.Wrap(err, "account activation failed")
	}

	srv.log(ctx).Info("Account activated")

	return nil
}

// SignOut discards the session locally and notifies listeners. The backend
// holds no server-side session state for this client, so no network call is
// made.
func (srv *sessionService) SignOut(ctx context.Context) error {
	if err := srv.sessionRepo.Delete(ctx); err != nil {
		srv.log(ctx).Warn("Failed to delete stored session", slog.Any("error", err))
	}

	srv.setSession(nil)
	srv.log(ctx).Info("Signed out")

	return nil
}

// Current returns a snapshot of the session for display purposes.
func (srv *sessionService) Current() *usecase.SessionOutput {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if !srv.current.Valid() {
		return &usecase.SessionOutput{SignedIn: false}
	}

	profile := *srv.current.Profile

	return &usecase.SessionOutput{
		SignedIn:   true,
		Profile:    &profile,
		SignedInAt: srv.current.SignedInAt,
	}
}

// Session returns the live session, or nil when signed out.
func (srv *sessionService) Session() *entity.Session {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.current
}

// Subscribe registers a listener for session changes.
func (srv *sessionService) Subscribe(listener usecase.SessionListener) func() {
	srv.mu.Lock()
	id := srv.nextListenerID
	srv.nextListenerID++
	srv.listeners[id] = listener
	srv.mu.Unlock()

	return func() {
		srv.mu.Lock()
		delete(srv.listeners, id)
		srv.mu.Unlock()
	}
}

// setSession swaps the session and notifies listeners synchronously, so a
// listener clearing per-user state is done before the caller returns.
func (srv *sessionService) setSession(session *entity.Session) {
	srv.mu.Lock()
	srv.current = session
	notify := make([]usecase.SessionListener, 0, len(srv.listeners))
	for _, listener := range srv.listeners {
		notify = append(notify, listener)
	}
	srv.mu.Unlock()

	for _, listener := range notify {
		listener(session)
	}
}

func (srv *sessionService) discardStoredSession(ctx context.Context) {
	if err := srv.sessionRepo.Delete(ctx); err != nil {
		srv.log(ctx).Warn("Failed to discard stored session", slog.Any("error", err))
	}
}
