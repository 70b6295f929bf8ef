package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// EntitlementOutput is a point-in-time view of the entitlement poller.
type EntitlementOutput struct {
	State     entity.SyncState
	ToolIDs   []int64
	HasAccess bool
	Expiry    *time.Time
	FetchedAt time.Time
}

// EntitlementUsecase keeps the local view of purchased tools in sync with
// the backend. It owns a background scheduler and serializes syncs so at
// most one request is in flight at a time.
type EntitlementUsecase interface {
	// Start launches the periodic sync scheduler. Idempotent.
	Start(ctx context.Context) error

	// Stop cancels the scheduler and waits for an in-flight sync to finish.
	Stop()

	// HasAccess reports whether the current user owns the given tool.
	// Always false while signed out.
	HasAccess(toolID int64) bool

	// Snapshot returns the current sync state and granted set.
	Snapshot() *EntitlementOutput

	// Refresh performs a sync now, blocking until it completes. Concurrent
	// callers coalesce onto a single backend request.
	Refresh(ctx context.Context) error

	// ReportVisibilityRegained triggers an off-schedule sync because the user
	// returned to the client after using another device or window.
	ReportVisibilityRegained(ctx context.Context)

	// HandlePaymentReturn runs the post-payment convergence loop, retrying
	// the sync until the granted set changes or attempts run out.
	HandlePaymentReturn(ctx context.Context) error
}
