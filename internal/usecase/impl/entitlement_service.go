package impl

import (
	"context"
	"log/slog"
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

// entitlementService implements the EntitlementUsecase interface. It owns the
// sync state machine: unauthenticated -> syncing -> synced/stale. All
// transitions happen under mu; the backend call itself runs outside the lock.
type entitlementService struct {
	billing       service.BillingGateway
	sessions      usecase.SessionUsecase
	cacheRepo     repository.EntitlementCacheRepository
	interval      time.Duration
	retryAttempts int
	retryDelay    time.Duration
	logger        *slog.Logger

	mu       sync.Mutex
	state    entity.SyncState
	set      *entity.EntitlementSet
	inflight bool
	waiters  []chan error

	schedulerMu     sync.Mutex
	schedulerCancel context.CancelFunc
	schedulerDone   chan struct{}
}

// EntitlementServiceParams holds dependencies for the entitlement service, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	BillingGateway service.BillingGateway
	SessionUsecase usecase.SessionUsecase
	CacheRepo      repository.EntitlementCacheRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewEntitlementService is the constructor for entitlementService. It
// subscribes to session changes so a sign-out immediately empties the set and
// a sign-in seeds it from the cached snapshot.
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	srv := &entitlementService{
		billing:       params.BillingGateway,
		sessions:      params.SessionUsecase,
		cacheRepo:     params.CacheRepo,
		interval:      params.Config.Poller.Interval,
		retryAttempts: params.Config.Poller.PaymentRetryAttempts,
		retryDelay:    params.Config.Poller.PaymentRetryDelay,
		logger:        params.Logger,
		state:         entity.SyncStateUnauthenticated,
	}

	params.SessionUsecase.Subscribe(srv.onSessionChanged)
	srv.seedFromSession(params.SessionUsecase.Session())

	return srv
}

func (srv *entitlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// onSessionChanged runs synchronously inside the session mutation, so the
// set is never served across a user change.
func (srv *entitlementService) onSessionChanged(session *entity.Session) {
	if !session.Valid() {
		srv.mu.Lock()
		srv.state = entity.SyncStateUnauthenticated
		srv.set = nil
		srv.mu.Unlock()

		if err := srv.cacheRepo.Delete(context.Background()); err != nil {
			srv.logger.Warn("Failed to clear entitlement snapshots", slog.Any("error", err))
		}

		return
	}

	srv.seedFromSession(session)

	// Fetch fresh data off the caller's critical path.
	go func() {
		if err := srv.Refresh(context.Background()); err != nil {
			srv.logger.Warn("Post-sign-in entitlement sync failed", slog.Any("error", err))
		}
	}()
}

// seedFromSession loads the cached snapshot for the signed-in user so the UI
// has data before the first fresh sync. Cached data is served as stale.
func (srv *entitlementService) seedFromSession(session *entity.Session) {
	if !session.Valid() {
		return
	}

	cached, err := srv.cacheRepo.Load(context.Background(), session.Profile.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			srv.logger.Warn("Failed to load entitlement snapshot", slog.Any("error", err))
		}
		cached = nil
	}

	srv.mu.Lock()
	srv.state = entity.SyncStateStale
	srv.set = cached
	srv.mu.Unlock()
}

// Start launches the periodic sync scheduler. Idempotent.
func (srv *entitlementService) Start(_ context.Context) error {
	srv.schedulerMu.Lock()
	defer srv.schedulerMu.Unlock()

	if srv.schedulerDone != nil {
		return nil
	}

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	srv.schedulerCancel = cancel
	srv.schedulerDone = done

	go srv.run(runCtx, done)

	srv.logger.Info("Entitlement scheduler started", slog.Duration("interval", srv.interval))

	return nil
}

func (srv *entitlementService) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(srv.interval)
	defer ticker.Stop()

	srv.syncIfSignedIn(ctx, "startup")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			srv.syncIfSignedIn(ctx, "interval")
		}
	}
}

func (srv *entitlementService) syncIfSignedIn(ctx context.Context, trigger string) {
	if !srv.sessions.Session().Valid() {
		return
	}

	if err := srv.Refresh(ctx); err != nil && !errors.Is(err, context.Canceled) {
		srv.log(ctx).Warn("Scheduled entitlement sync failed",
			slog.String("trigger", trigger), slog.Any("error", err))
	}
}

// Stop cancels the scheduler and waits for it to drain.
func (srv *entitlementService) Stop() {
	srv.schedulerMu.Lock()
	cancel := srv.schedulerCancel
	done := srv.schedulerDone
	srv.schedulerCancel = nil
	srv.schedulerDone = nil
	srv.schedulerMu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
	srv.logger.Info("Entitlement scheduler stopped")
}

// HasAccess reports whether the current user owns the given tool. A stale
// set still grants access; the backend enforces the real boundary.
func (srv *entitlementService) HasAccess(toolID int64) bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.state == entity.SyncStateUnauthenticated {
		return false
	}

	return srv.set.Contains(toolID)
}

// Snapshot returns the current sync state and granted set.
func (srv *entitlementService) Snapshot() *usecase.EntitlementOutput {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	out := &usecase.EntitlementOutput{
		State:     srv.state,
		ToolIDs:   srv.set.ToolIDs(),
		HasAccess: !srv.set.Empty(),
	}
	if srv.set != nil {
		out.Expiry = srv.set.Expiry
		out.FetchedAt = srv.set.FetchedAt
	}

	return out
}

// Refresh performs a sync now, blocking until it completes. Concurrent
// callers join the in-flight sync instead of issuing another request.
func (srv *entitlementService) Refresh(ctx context.Context) error {
	session := srv.sessions.Session()
	if !session.Valid() {
		return errors.Wrap(domainerrors.ErrAuthRequired, "entitlement sync requires a session")
	}

	srv.mu.Lock()
	if srv.inflight {
		waiter := make(chan error, 1)
		srv.waiters = append(srv.waiters, waiter)
		srv.mu.Unlock()

		select {
		case err := <-waiter:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	srv.inflight = true
	srv.state = entity.SyncStateSyncing
	srv.mu.Unlock()

	err := srv.runSync(ctx, session)

	srv.mu.Lock()
	srv.inflight = false
	waiters := srv.waiters
	srv.waiters = nil
	srv.mu.Unlock()

	for _, waiter := range waiters {
		waiter <- err
	}

	return err
}

func (srv *entitlementService) runSync(ctx context.Context, session *entity.Session) error {
	set, err := srv.billing.FetchEntitlements(ctx, session.AccessToken)
	if err != nil {
		if errors.Is(err, service.ErrCredentialRejected) {
			srv.log(ctx).Warn("Backend rejected stored credential, signing out",
				slog.String("email", session.Profile.Email))
			// SignOut notifies our session listener, which moves the state
			// machine to unauthenticated.
			_ = srv.sessions.SignOut(ctx)

			return errors.Wrap(domainerrors.ErrSessionExpired, "entitlement sync")
		}

		srv.mu.Lock()
		if srv.state != entity.SyncStateUnauthenticated {
			srv.state = entity.SyncStateStale
		}
		srv.mu.Unlock()
		srv.log(ctx).Warn("Entitlement sync failed, keeping previous set", slog.Any("error", err))

		return errors.Wrap(err, "entitlement sync failed")
	}

	srv.mu.Lock()
	if srv.state == entity.SyncStateUnauthenticated {
		// Signed out while the request was in flight; drop the result.
		srv.mu.Unlock()

		return nil
	}
	srv.set = set
	srv.state = entity.SyncStateSynced
	srv.mu.Unlock()

	if err := srv.cacheRepo.Save(ctx, session.Profile.ID, set); err != nil {
		srv.log(ctx).Warn("Failed to persist entitlement snapshot", slog.Any("error", err))
	}

	srv.log(ctx).Debug("Entitlement sync completed", slog.Int("tools", len(set.ToolIDs())))

	return nil
}

// ReportVisibilityRegained triggers an off-schedule sync after the user
// returns from another window or device.
func (srv *entitlementService) ReportVisibilityRegained(ctx context.Context) {
	if !srv.sessions.Session().Valid() {
		return
	}

	srv.log(ctx).Debug("Visibility regained, scheduling entitlement sync")

	go func() {
		if err := srv.Refresh(context.Background()); err != nil {
			srv.logger.Warn("Visibility-triggered sync failed", slog.Any("error", err))
		}
	}()
}

// HandlePaymentReturn retries the sync until the granted set changes or the
// attempts run out. Payment confirmation reaches the backend asynchronously,
// so the first fetch after returning from checkout may still see old data.
func (srv *entitlementService) HandlePaymentReturn(ctx context.Context) error {
	previous := srv.currentSet()

	var lastErr error
	for attempt := 1; attempt <= srv.retryAttempts; attempt++ {
		lastErr = srv.Refresh(ctx)
		if lastErr == nil {
			current := srv.currentSet()
			if !current.Empty() && !current.Equal(previous) {
				srv.log(ctx).Info("Entitlements updated after payment",
					slog.Int("attempt", attempt), slog.Int("tools", len(current.ToolIDs())))

				return nil
			}
		}

		if attempt == srv.retryAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(srv.retryDelay):
		}
	}

	if lastErr != nil {
		return errors.Wrap(lastErr, "payment-return sync did not complete")
	}

	// No visible change is not an error; the payment may have been abandoned.
	srv.log(ctx).Info("Payment-return sync finished without entitlement changes")

	return nil
}

func (srv *entitlementService) currentSet() *entity.EntitlementSet {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.set
}
