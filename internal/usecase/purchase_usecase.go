package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// PurchaseInput identifies the catalog item to buy.
type PurchaseInput struct {
	ToolID int64
}

// PurchaseOutput describes an initiated checkout.
type PurchaseOutput struct {
	CheckoutID  string
	CheckoutURL string
	// QRCodePNG renders the checkout URL for completion on another device.
	QRCodePNG []byte
	Item      entity.CatalogItem
	StartedAt time.Time
}

// PendingPurchaseOutput describes a checkout that was initiated but whose
// payment outcome is not yet reflected in the entitlement set.
type PendingPurchaseOutput struct {
	CheckoutID  string
	CheckoutURL string
	Item        entity.CatalogItem
	StartedAt   time.Time
}

// PurchaseUsecase drives the buy flow from catalog item to checkout URL and
// watches the checkout window so entitlements refresh once it closes.
type PurchaseUsecase interface {
	// Purchase validates the item and the session, opens a backend checkout
	// and starts the checkout window watch.
	Purchase(ctx context.Context, input PurchaseInput) (*PurchaseOutput, error)

	// ReportCheckoutClosed tells the watch that the checkout window for the
	// given checkout has closed, scheduling the staggered entitlement
	// refreshes.
	ReportCheckoutClosed(ctx context.Context, checkoutID string) error

	// Pending returns the checkout currently being watched, if any.
	Pending() *PendingPurchaseOutput

	// Resume reopens the pending checkout, returning its URL and QR code
	// again without creating a new backend checkout.
	Resume(ctx context.Context) (*PurchaseOutput, error)
}
