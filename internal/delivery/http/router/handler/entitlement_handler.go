package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// paymentReturnParams are the query parameters the payment provider appends
// when it bounces the browser back to the marketplace page.
var paymentReturnParams = []string{"status", "success", "session_id"}

// EntitlementHandler holds dependencies for entitlement-related handlers.
type EntitlementHandler struct {
	uc      usecase.EntitlementUsecase
	catalog usecase.CatalogUsecase
	logger  *slog.Logger
}

// NewEntitlementHandler is the constructor for EntitlementHandler, injected by Fx.
func NewEntitlementHandler(uc usecase.EntitlementUsecase, catalog usecase.CatalogUsecase, logger *slog.Logger) *EntitlementHandler {
	return &EntitlementHandler{
		uc:      uc,
		catalog: catalog,
		logger:  logger,
	}
}

// Get returns the poller state and the granted tool set.
func (h *EntitlementHandler) Get(c echo.Context) error {
	return response.Success(c, http.StatusOK, entitlementPayload(h.uc.Snapshot()), "")
}

type refreshRequest struct {
	Reason string `json:"reason"`
}

// Refresh triggers an off-schedule sync. A visibility-regained report is
// fire-and-forget; a manual refresh blocks until the sync completes.
func (h *EntitlementHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}

	if req.Reason == "visibility" {
		h.uc.ReportVisibilityRegained(c.Request().Context())

		return response.Success(c, http.StatusAccepted, nil, "Refresh scheduled")
	}

	if err := h.uc.Refresh(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entitlementPayload(h.uc.Snapshot()), "Entitlements refreshed")
}

// Marketplace serves the storefront landing data. When the payment provider
// bounced the browser back here, the provider's query parameters are
// stripped with a redirect and the post-payment convergence loop starts in
// the background.
func (h *EntitlementHandler) Marketplace(c echo.Context) error {
	if isPaymentReturn(c) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			if err := h.uc.HandlePaymentReturn(ctx); err != nil {
				h.logger.Warn("Payment-return convergence failed", slog.Any("error", err))
			}
		}()

		return c.Redirect(http.StatusFound, strippedURL(c))
	}

	items, err := h.catalog.Items(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	catalog := make([]map[string]any, 0, len(items))
	for _, item := range items {
		entry := catalogItemPayload(item)
		entry["owned"] = h.uc.HasAccess(item.ID)
		catalog = append(catalog, entry)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"catalog":      catalog,
		"entitlements": entitlementPayload(h.uc.Snapshot()),
	}, "")
}

func isPaymentReturn(c echo.Context) bool {
	return c.QueryParam("status") == "success" ||
		c.QueryParam("success") == "true" ||
		c.QueryParam("session_id") != ""
}

// strippedURL removes the payment provider's parameters but keeps any others.
func strippedURL(c echo.Context) string {
	cleaned := *c.Request().URL
	query := cleaned.Query()
	for _, param := range paymentReturnParams {
		query.Del(param)
	}
	cleaned.RawQuery = query.Encode()

	return cleaned.String()
}

func entitlementPayload(snapshot *usecase.EntitlementOutput) map[string]any {
	payload := map[string]any{
		"state":      snapshot.State.String(),
		"tool_ids":   snapshot.ToolIDs,
		"has_access": snapshot.HasAccess,
	}
	if snapshot.Expiry != nil {
		payload["expiry_date"] = snapshot.Expiry.Format(time.RFC3339)
	}
	if !snapshot.FetchedAt.IsZero() {
		payload["fetched_at"] = snapshot.FetchedAt.Format(time.RFC3339)
	}

	return payload
}
