package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrSnapshotNotFound is returned when no entitlement snapshot is cached.
var ErrSnapshotNotFound = errors.New("entitlement snapshot not found")

// EntitlementCacheRepository persists the last successful entitlement sync so
// a restarted client can serve it as stale data until the first fresh sync.
// The cache is keyed by user so a snapshot is never served to a different
// account.
type EntitlementCacheRepository interface {
	// Save replaces the cached snapshot for the given user.
	Save(ctx context.Context, userID string, set *entity.EntitlementSet) error

	// Load returns the cached snapshot for the given user,
	// ErrSnapshotNotFound when absent, or ErrCorruptRecord when the stored
	// data cannot be decoded.
	Load(ctx context.Context, userID string) (*entity.EntitlementSet, error)

	// Delete removes all cached snapshots.
	Delete(ctx context.Context) error
}
