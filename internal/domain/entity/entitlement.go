// Package entity contains the core business objects of the project.
package entity

import "time"

// SyncState represents the entitlement poller's view of its own data.
type SyncState string

const (
	// SyncStateUnauthenticated means no session exists; the set is empty.
	SyncStateUnauthenticated SyncState = "unauthenticated"
	// SyncStateSyncing means a backend sync is in flight.
	SyncStateSyncing SyncState = "syncing"
	// SyncStateSynced means the set reflects the last successful sync.
	SyncStateSynced SyncState = "synced"
	// SyncStateStale means the last sync failed; the previous set is
	// retained but must not be treated as current truth.
	SyncStateStale SyncState = "stale"
)

// String returns the string representation of the SyncState.
func (s SyncState) String() string {
	return string(s)
}

// IsValid checks if the SyncState is a valid value.
func (s SyncState) IsValid() bool {
	switch s {
	case SyncStateUnauthenticated, SyncStateSyncing, SyncStateSynced, SyncStateStale:
		return true
	default:
		return false
	}
}

// EntitlementSet records which catalog items the current user has purchased.
// It is keyed by backend tool identifier; display-name resolution happens
// only at the query boundary. A set is replaced wholesale on every sync,
// never partially updated.
type EntitlementSet struct {
	toolIDs   map[int64]struct{}
	Expiry    *time.Time // Optional subscription end reported by the backend.
	FetchedAt time.Time  // When this set was obtained.
}

// NewEntitlementSet builds a set from the backend's tool ID list.
func NewEntitlementSet(toolIDs []int64, expiry *time.Time, fetchedAt time.Time) *EntitlementSet {
	ids := make(map[int64]struct{}, len(toolIDs))
	for _, id := range toolIDs {
		ids[id] = struct{}{}
	}

	return &EntitlementSet{toolIDs: ids, Expiry: expiry, FetchedAt: fetchedAt}
}

// Contains reports whether the set grants access to the given tool.
func (e *EntitlementSet) Contains(toolID int64) bool {
	if e == nil {
		return false
	}
	_, ok := e.toolIDs[toolID]

	return ok
}

// Empty reports whether the set grants access to nothing.
func (e *EntitlementSet) Empty() bool {
	return e == nil || len(e.toolIDs) == 0
}

// ToolIDs returns the granted tool identifiers in unspecified order.
func (e *EntitlementSet) ToolIDs() []int64 {
	if e == nil {
		return nil
	}
	ids := make([]int64, 0, len(e.toolIDs))
	for id := range e.toolIDs {
		ids = append(ids, id)
	}

	return ids
}

// Equal reports whether two sets grant access to the same tools.
// Expiry and fetch time are not part of the comparison.
func (e *EntitlementSet) Equal(other *EntitlementSet) bool {
	if e.Empty() && other.Empty() {
		return true
	}
	if e == nil || other == nil || len(e.toolIDs) != len(other.toolIDs) {
		return false
	}
	for id := range e.toolIDs {
		if _, ok := other.toolIDs[id]; !ok {
			return false
		}
	}

	return true
}
