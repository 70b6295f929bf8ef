package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase resolves display names and identifiers against the backend
// tool catalog. The catalog is fetched once per process and cached; failed
// fetches are never cached so the next call retries.
type CatalogUsecase interface {
	// Items returns the full catalog, fetching it on first use.
	Items(ctx context.Context) ([]entity.CatalogItem, error)

	// Refresh discards the cache and fetches the catalog again.
	Refresh(ctx context.Context) ([]entity.CatalogItem, error)

	// ResolveTool maps a display name to its catalog item. Lookup is
	// case-sensitive on the exact backend name.
	ResolveTool(ctx context.Context, name string) (entity.CatalogItem, error)

	// ResolveCached resolves a display name against the cached catalog
	// without ever fetching. Intended for pure gating decisions.
	ResolveCached(name string) (entity.CatalogItem, bool)

	// ItemByID maps a backend tool identifier to its catalog item.
	ItemByID(ctx context.Context, id int64) (entity.CatalogItem, error)

	// Invalidate drops the cached catalog without fetching a replacement.
	Invalidate()
}
