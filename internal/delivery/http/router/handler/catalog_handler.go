package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog-related handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the full tool catalog.
func (h *CatalogHandler) List(c echo.Context) error {
	items, err := h.uc.Items(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]map[string]any, 0, len(items))
	for _, item := range items {
		payload = append(payload, catalogItemPayload(item))
	}

	return response.Success(c, http.StatusOK, payload, "")
}

// Resolve maps an exact display name to its catalog entry.
func (h *CatalogHandler) Resolve(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'name' is required")
	}

	item, err := h.uc.ResolveTool(c.Request().Context(), name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, catalogItemPayload(item), "")
}

func catalogItemPayload(item entity.CatalogItem) map[string]any {
	return map[string]any{
		"id":          item.ID,
		"name":        item.Name,
		"price":       item.Price,
		"category":    item.Category,
		"coming_soon": item.ComingSoon,
		"url":         item.LaunchURL,
	}
}
