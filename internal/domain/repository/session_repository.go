// Package repository defines the contracts for durable client storage.
// Implementations live in the infra layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrSessionNotFound is returned when no session is stored. Absence of a
// stored session is equivalent to a signed-out state.
var ErrSessionNotFound = errors.New("session not found")

// ErrCorruptRecord is returned when stored data cannot be decoded. Callers
// treat it as absence and clear the record rather than failing.
var ErrCorruptRecord = errors.New("stored record is corrupt")

// SessionRepository persists the current session across application restarts.
// At most one session is stored at a time.
type SessionRepository interface {
	// Save replaces the stored session.
	Save(ctx context.Context, session *entity.Session) error

	// Load returns the stored session, ErrSessionNotFound when absent, or
	// ErrCorruptRecord when the stored data cannot be decoded.
	Load(ctx context.Context) (*entity.Session, error)

	// Delete removes the stored session. Deleting an absent session is not
	// an error.
	Delete(ctx context.Context) error
}
