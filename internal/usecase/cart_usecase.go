package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartOutput is the cart contents plus the payable total.
type CartOutput struct {
	Items []entity.CartItem
	// Total sums the prices of items still payable; items the user already
	// owns are excluded even if they were added before the purchase landed.
	Total float64
}

// CartUsecase holds the in-memory cart. The cart is per-session state and is
// cleared on sign-out.
type CartUsecase interface {
	// Add puts a catalog item in the cart. Unpurchasable items and
	// duplicates are rejected.
	Add(ctx context.Context, toolID int64) error

	// Remove takes an item out of the cart.
	Remove(ctx context.Context, toolID int64) error

	// Clear empties the cart.
	Clear(ctx context.Context)

	// Contents returns the cart items and total.
	Contents(ctx context.Context) *CartOutput
}
