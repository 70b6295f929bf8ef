package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. The cart lives in memory
// only; it is per-session state and is discarded on sign-out.
type cartService struct {
	catalog      usecase.CatalogUsecase
	entitlements usecase.EntitlementUsecase
	logger       *slog.Logger

	mu    sync.Mutex
	items []entity.CartItem
}

// CartServiceParams holds dependencies for the cart service, injected by Fx.
type CartServiceParams struct {
	fx.In

	CatalogUsecase     usecase.CatalogUsecase
	EntitlementUsecase usecase.EntitlementUsecase
	SessionUsecase     usecase.SessionUsecase
	Logger             *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	srv := &cartService{
		catalog:      params.CatalogUsecase,
		entitlements: params.EntitlementUsecase,
		logger:       params.Logger,
	}

	params.SessionUsecase.Subscribe(func(session *entity.Session) {
		if !session.Valid() {
			srv.Clear(context.Background())
		}
	})

	return srv
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add puts a catalog item in the cart. Items that cannot be paid for, either
// because they are not released or already owned, are rejected.
func (srv *cartService) Add(ctx context.Context, toolID int64) error {
	item, err := srv.catalog.ItemByID(ctx, toolID)
	if err != nil {
		return errors.Wrap(err, "cannot add unknown tool to cart")
	}

	if item.ComingSoon {
		return errors.Wrap(domainerrors.ErrToolUnavailable, "cannot add to cart")
	}
	if srv.entitlements.HasAccess(toolID) {
		return errors.Wrap(domainerrors.ErrAlreadyOwned, "cannot add to cart")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for _, existing := range srv.items {
		if existing.Item.ID == toolID {
			return errors.Wrap(domainerrors.ErrAlreadyInCart, "cannot add to cart")
		}
	}

	srv.items = append(srv.items, entity.CartItem{Item: item, AddedAt: time.Now()})
	srv.log(ctx).Debug("Added to cart", slog.String("tool", item.Name))

	return nil
}

// Remove takes an item out of the cart.
func (srv *cartService) Remove(ctx context.Context, toolID int64) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	for i, existing := range srv.items {
		if existing.Item.ID == toolID {
			srv.items = append(srv.items[:i], srv.items[i+1:]...)
			srv.log(ctx).Debug("Removed from cart", slog.String("tool", existing.Item.Name))

			return nil
		}
	}

	return errors.Wrap(domainerrors.ErrCartItemNotFound, "cannot remove from cart")
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context) {
	srv.mu.Lock()
	cleared := len(srv.items)
	srv.items = nil
	srv.mu.Unlock()

	if cleared > 0 {
		srv.log(ctx).Debug("Cart cleared", slog.Int("items", cleared))
	}
}

// Contents returns the cart items and the payable total. An item purchased
// after it was added stays visible but no longer counts towards the total.
func (srv *cartService) Contents(_ context.Context) *usecase.CartOutput {
	srv.mu.Lock()
	items := make([]entity.CartItem, len(srv.items))
	copy(items, srv.items)
	srv.mu.Unlock()

	var total float64
	for _, cartItem := range items {
		if srv.entitlements.HasAccess(cartItem.Item.ID) {
			continue
		}
		total += cartItem.Item.Price
	}

	return &usecase.CartOutput{Items: items, Total: total}
}
