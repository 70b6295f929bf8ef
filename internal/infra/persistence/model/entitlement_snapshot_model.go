package model

import "time"

// EntitlementSnapshotModel is the GORM struct for the 'entitlement_snapshots'
// table. It caches the last successful entitlement sync per user so a
// restarted client can serve it as stale data until a fresh sync lands.
type EntitlementSnapshotModel struct {
	UserID string `gorm:"primaryKey"`
	// ToolIDs is the JSON-encoded list of granted tool identifiers.
	ToolIDs   string `gorm:"not null"`
	Expiry    *time.Time
	FetchedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EntitlementSnapshotModel) TableName() string {
	return "entitlement_snapshots"
}
