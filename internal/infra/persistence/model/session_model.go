// Package model contains the GORM-specific structs for the local database.
package model

import "time"

// SessionModel is the GORM struct for the 'sessions' table. The client is
// single-user, so at most one row exists (a fixed primary key enforces it).
type SessionModel struct {
	ID           uint   `gorm:"primaryKey"`
	AccessToken  string `gorm:"not null"`
	RefreshToken string
	// Profile is the serialized user profile. Decoding failures are treated
	// as a corrupt record, equivalent to a signed-out state.
	Profile    string `gorm:"not null"`
	SignedInAt time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// CurrentSessionID is the fixed key of the single session row.
const CurrentSessionID uint = 1
