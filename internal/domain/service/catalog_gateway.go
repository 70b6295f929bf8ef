package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogGateway fetches the purchasable-tool directory from the backend.
type CatalogGateway interface {
	// ListTools returns the full catalog. A transport failure returns a
	// NetworkError and no partial data.
	ListTools(ctx context.Context) ([]entity.CatalogItem, error)
}
