package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns the cart contents and payable total.
func (h *CartHandler) Get(c echo.Context) error {
	return response.Success(c, http.StatusOK, cartPayload(h.uc.Contents(c.Request().Context())), "")
}

type addItemRequest struct {
	ToolID int64 `json:"tool_id"`
}

// AddItem puts a catalog item in the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if req.ToolID <= 0 {
		return response.BadRequest(c, "INVALID_INPUT", "tool_id is required")
	}

	if err := h.uc.Add(c.Request().Context(), req.ToolID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, cartPayload(h.uc.Contents(c.Request().Context())), "Added to cart")
}

// RemoveItem takes an item out of the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	toolID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid tool id")
	}

	if err := h.uc.Remove(c.Request().Context(), toolID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartPayload(h.uc.Contents(c.Request().Context())), "Removed from cart")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	h.uc.Clear(c.Request().Context())

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}

func cartPayload(output *usecase.CartOutput) map[string]any {
	items := make([]map[string]any, 0, len(output.Items))
	for _, cartItem := range output.Items {
		entry := catalogItemPayload(cartItem.Item)
		entry["added_at"] = cartItem.AddedAt.Format(time.RFC3339)
		items = append(items, entry)
	}

	return map[string]any{
		"items": items,
		"total": output.Total,
	}
}
