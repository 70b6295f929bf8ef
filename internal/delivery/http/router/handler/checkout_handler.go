package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for purchase-related handlers.
type CheckoutHandler struct {
	uc      usecase.PurchaseUsecase
	catalog usecase.CatalogUsecase
	logger  *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.PurchaseUsecase, catalog usecase.CatalogUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:      uc,
		catalog: catalog,
		logger:  logger,
	}
}

type checkoutRequest struct {
	ToolID   int64  `json:"tool_id"`
	ToolName string `json:"tool_name"`
}

// Create opens a backend checkout for the given tool. The tool may be
// addressed by backend id or by exact display name.
func (h *CheckoutHandler) Create(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	toolID := req.ToolID
	if toolID <= 0 {
		if req.ToolName == "" {
			return response.BadRequest(c, "INVALID_INPUT", "tool_id or tool_name is required")
		}
		item, err := h.catalog.ResolveTool(c.Request().Context(), req.ToolName)
		if err != nil {
			return errors.WithStack(err)
		}
		toolID = item.ID
	}

	output, err := h.uc.Purchase(c.Request().Context(), usecase.PurchaseInput{ToolID: toolID})
	if err != nil {
		// An already-owned tool needs no checkout; report it as a no-op
		// rather than a failure.
		if errors.Is(err, domainerrors.ErrAlreadyOwned) {
			return response.Success(c, http.StatusOK, map[string]any{
				"tool_id":       toolID,
				"already_owned": true,
			}, "Tool already owned")
		}

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, purchasePayload(output), "Checkout created")
}

// Closed reports that the external checkout window was closed.
func (h *CheckoutHandler) Closed(c echo.Context) error {
	if err := h.uc.ReportCheckoutClosed(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Checkout close recorded")
}

// Resume reopens the pending checkout without creating a new backend session.
func (h *CheckoutHandler) Resume(c echo.Context) error {
	output, err := h.uc.Resume(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchasePayload(output), "Checkout resumed")
}

// Pending returns the checkout currently being watched, if any.
func (h *CheckoutHandler) Pending(c echo.Context) error {
	pending := h.uc.Pending()
	if pending == nil {
		return response.NotFound(c, "NOT_FOUND", "No pending checkout")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"checkout_id":  pending.CheckoutID,
		"checkout_url": pending.CheckoutURL,
		"item":         catalogItemPayload(pending.Item),
		"started_at":   pending.StartedAt.Format(time.RFC3339),
	}, "")
}

func purchasePayload(output *usecase.PurchaseOutput) map[string]any {
	payload := map[string]any{
		"checkout_id":  output.CheckoutID,
		"checkout_url": output.CheckoutURL,
		"item":         catalogItemPayload(output.Item),
		"started_at":   output.StartedAt.Format(time.RFC3339),
	}
	if len(output.QRCodePNG) > 0 {
		payload["qr_code_png"] = base64.StdEncoding.EncodeToString(output.QRCodePNG)
	}

	return payload
}
