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
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pendingCheckout tracks a checkout whose payment outcome has not landed in
// the entitlement set yet. At most one checkout is watched at a time; a new
// purchase replaces the previous watch.
type pendingCheckout struct {
	id        string
	url       string
	item      entity.CatalogItem
	startedAt time.Time

	mu     sync.Mutex
	closed bool

	cancel context.CancelFunc
}

func (p *pendingCheckout) markClosed() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

func (p *pendingCheckout) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.closed
}

// purchaseService implements the PurchaseUsecase interface.
type purchaseService struct {
	sessions     usecase.SessionUsecase
	catalog      usecase.CatalogUsecase
	entitlements usecase.EntitlementUsecase
	cart         usecase.CartUsecase
	billing      service.BillingGateway
	qrService    service.QRCodeService
	checkoutCfg  config.CheckoutConfig
	logger       *slog.Logger

	mu       sync.Mutex
	pending  *pendingCheckout
	deferred int64 // Tool a signed-out user tried to buy; retried after sign-in.
}

// PurchaseServiceParams holds dependencies for the purchase service, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	SessionUsecase     usecase.SessionUsecase
	CatalogUsecase     usecase.CatalogUsecase
	EntitlementUsecase usecase.EntitlementUsecase
	CartUsecase        usecase.CartUsecase
	BillingGateway     service.BillingGateway
	QRCodeService      service.QRCodeService
	Config             *config.Config
	Logger             *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	srv := &purchaseService{
		sessions:     params.SessionUsecase,
		catalog:      params.CatalogUsecase,
		entitlements: params.EntitlementUsecase,
		cart:         params.CartUsecase,
		billing:      params.BillingGateway,
		qrService:    params.QRCodeService,
		checkoutCfg:  params.Config.Checkout,
		logger:       params.Logger,
	}

	// A sign-out abandons any checkout watch; the entitlements it would
	// refresh no longer belong to the next user. A sign-in retries the
	// purchase a signed-out user attempted, if any.
	params.SessionUsecase.Subscribe(func(session *entity.Session) {
		if !session.Valid() {
			srv.abandonPending()
			srv.setDeferred(0)

			return
		}

		if toolID := srv.takeDeferred(); toolID != 0 {
			go srv.retryDeferred(toolID)
		}
	})

	return srv
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Purchase validates the item and session, opens a backend checkout and
// starts the checkout window watch.
func (srv *purchaseService) Purchase(ctx context.Context, input usecase.PurchaseInput) (*usecase.PurchaseOutput, error) {
	session := srv.sessions.Session()
	if !session.Valid() {
		srv.setDeferred(input.ToolID)

		return nil, errors.Wrap(domainerrors.ErrAuthRequired, "purchase requires a session")
	}

	item, err := srv.catalog.ItemByID(ctx, input.ToolID)
	if err != nil {
		return nil, errors.Wrap(err, "purchase target not found")
	}
	if item.ComingSoon {
		return nil, errors.Wrap(domainerrors.ErrToolUnavailable, "purchase rejected")
	}
	if srv.entitlements.HasAccess(item.ID) {
		return nil, errors.Wrap(domainerrors.ErrAlreadyOwned, "purchase rejected")
	}

	checkoutURL, err := srv.billing.CreateCheckout(ctx, session.AccessToken, item.ID)
	if err != nil {
		srv.log(ctx).Warn("Checkout creation failed", slog.String("tool", item.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create checkout")
	}

	// The cart entry is cleared as soon as the checkout opens; the payment
	// outcome is confirmed later by the staggered refreshes.
	if err := srv.cart.Remove(ctx, item.ID); err != nil &&
		!errors.Is(err, domainerrors.ErrCartItemNotFound) {
		srv.log(ctx).Warn("Failed to clear cart entry after checkout",
			slog.String("tool", item.Name), slog.Any("error", err))
	}

	qrPNG, err := srv.qrService.GenerateCheckoutQR(checkoutURL)
	if err != nil {
		// The checkout URL still works without the QR hand-off.
		srv.log(ctx).Warn("Checkout QR generation failed", slog.Any("error", err))
		qrPNG = nil
	}

	pending := &pendingCheckout{
		id:        uuid.New().String(),
		url:       checkoutURL,
		item:      item,
		startedAt: time.Now(),
	}
	srv.installPending(pending)

	srv.log(ctx).Info("Checkout started",
		slog.String("tool", item.Name), slog.String("checkoutID", pending.id))

	return &usecase.PurchaseOutput{
		CheckoutID:  pending.id,
		CheckoutURL: checkoutURL,
		QRCodePNG:   qrPNG,
		Item:        item,
		StartedAt:   pending.startedAt,
	}, nil
}

// installPending replaces the watched checkout and starts its watch goroutine.
func (srv *purchaseService) installPending(pending *pendingCheckout) {
	watchCtx, cancel := context.WithCancel(context.Background())
	pending.cancel = cancel

	srv.mu.Lock()
	previous := srv.pending
	srv.pending = pending
	srv.mu.Unlock()

	if previous != nil && previous.cancel != nil {
		previous.cancel()
	}

	go srv.watch(watchCtx, pending)
}

// watch polls the closed flag of the external checkout window. Once the
// window closes it fires two staggered entitlement refreshes, because the
// backend learns about the payment with a delay.
func (srv *purchaseService) watch(ctx context.Context, pending *pendingCheckout) {
	deadline := time.NewTimer(srv.checkoutCfg.WatchTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(srv.checkoutCfg.WindowPollInterval)
	defer ticker.Stop()

	for !pending.isClosed() {
		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			srv.logger.Info("Checkout watch timed out", slog.String("checkoutID", pending.id))
			srv.clearPending(pending)

			return
		case <-ticker.C:
		}
	}

	srv.logger.Debug("Checkout window closed", slog.String("checkoutID", pending.id))

	firstDelay := srv.checkoutCfg.FirstRefreshDelay
	secondDelay := srv.checkoutCfg.SecondRefreshDelay - firstDelay
	if secondDelay < 0 {
		secondDelay = 0
	}

	for _, delay := range []time.Duration{firstDelay, secondDelay} {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		if err := srv.entitlements.Refresh(ctx); err != nil {
			srv.logger.Warn("Post-checkout entitlement refresh failed",
				slog.String("checkoutID", pending.id), slog.Any("error", err))
		}
	}

	if srv.entitlements.HasAccess(pending.item.ID) {
		srv.logger.Info("Purchase confirmed", slog.String("tool", pending.item.Name))
	}

	srv.clearPending(pending)
}

// ReportCheckoutClosed tells the watch that the checkout window closed.
func (srv *purchaseService) ReportCheckoutClosed(ctx context.Context, checkoutID string) error {
	srv.mu.Lock()
	pending := srv.pending
	srv.mu.Unlock()

	if pending == nil || pending.id != checkoutID {
		return errors.Wrap(domainerrors.ErrNotFound, "no such pending checkout")
	}

	pending.markClosed()
	srv.log(ctx).Debug("Checkout close reported", slog.String("checkoutID", checkoutID))

	return nil
}

// Pending returns the checkout currently being watched, if any.
func (srv *purchaseService) Pending() *usecase.PendingPurchaseOutput {
	srv.mu.Lock()
	pending := srv.pending
	srv.mu.Unlock()

	if pending == nil {
		return nil
	}

	return &usecase.PendingPurchaseOutput{
		CheckoutID:  pending.id,
		CheckoutURL: pending.url,
		Item:        pending.item,
		StartedAt:   pending.startedAt,
	}
}

// Resume reopens the pending checkout without creating a new backend session.
func (srv *purchaseService) Resume(ctx context.Context) (*usecase.PurchaseOutput, error) {
	if !srv.sessions.Session().Valid() {
		return nil, errors.Wrap(domainerrors.ErrAuthRequired, "resume requires a session")
	}

	srv.mu.Lock()
	pending := srv.pending
	srv.mu.Unlock()

	if pending == nil {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "no pending checkout to resume")
	}

	qrPNG, err := srv.qrService.GenerateCheckoutQR(pending.url)
	if err != nil {
		srv.log(ctx).Warn("Checkout QR generation failed on resume", slog.Any("error", err))
		qrPNG = nil
	}

	srv.log(ctx).Info("Checkout resumed", slog.String("checkoutID", pending.id))

	return &usecase.PurchaseOutput{
		CheckoutID:  pending.id,
		CheckoutURL: pending.url,
		QRCodePNG:   qrPNG,
		Item:        pending.item,
		StartedAt:   pending.startedAt,
	}, nil
}

// clearPending removes the watch entry if it still is the active one.
func (srv *purchaseService) clearPending(pending *pendingCheckout) {
	srv.mu.Lock()
	if srv.pending == pending {
		srv.pending = nil
	}
	srv.mu.Unlock()
}

func (srv *purchaseService) setDeferred(toolID int64) {
	srv.mu.Lock()
	srv.deferred = toolID
	srv.mu.Unlock()
}

func (srv *purchaseService) takeDeferred() int64 {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	toolID := srv.deferred
	srv.deferred = 0

	return toolID
}

// retryDeferred replays a purchase that was rejected for lack of a session.
// Failures only log; the user already moved on to signing in.
func (srv *purchaseService) retryDeferred(toolID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := srv.Purchase(ctx, usecase.PurchaseInput{ToolID: toolID}); err != nil {
		srv.logger.Warn("Deferred purchase retry failed",
			slog.Int64("toolID", toolID), slog.Any("error", err))
	}
}

func (srv *purchaseService) abandonPending() {
	srv.mu.Lock()
	pending := srv.pending
	srv.pending = nil
	srv.mu.Unlock()

	if pending != nil && pending.cancel != nil {
		pending.cancel()
	}
}
