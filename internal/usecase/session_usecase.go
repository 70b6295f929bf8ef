// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// RegisterInput defines the data required to create a marketplace account.
type RegisterInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Password       string
	RepeatPassword string
}

// --- Output DTOs ---

// SessionOutput describes the current session for the delivery layer.
type SessionOutput struct {
	SignedIn   bool
	Profile    *entity.UserProfile
	SignedInAt time.Time
}

// RegisterOutput returns the backend's confirmation message after a
// successful registration.
type RegisterOutput struct {
	Confirmation string
}

// SessionListener is notified synchronously whenever the session changes.
// A nil session means the user signed out; listeners observing a sign-out
// must discard per-user state before the next operation runs.
type SessionListener func(session *entity.Session)

// SessionUsecase defines the interface for session-related business
// operations. This is the contract that the delivery layer depends on.
type SessionUsecase interface {
	// Rehydrate restores the stored session on startup. A missing, corrupt
	// or locally expired record leaves the client signed out; it never fails
	// the startup.
	Rehydrate(ctx context.Context) error

	// SignIn authenticates against the backend and establishes a session.
	SignIn(ctx context.Context, input SignInInput) (*SessionOutput, error)

	// Register creates a new account. It does not establish a session; the
	// user must activate the account and sign in afterwards.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Activate confirms an account using the emailed uid/token pair.
	Activate(ctx context.Context, uid, token string) error

	// SignOut discards the session locally and notifies listeners. It is
	// also invoked internally when the backend rejects the stored credential.
	SignOut(ctx context.Context) error

	// Current returns a snapshot of the session for display purposes.
	Current() *SessionOutput

	// Session returns the live session, or nil when signed out. Intended for
	// collaborating usecases that need the bearer credential.
	Session() *entity.Session

	// Subscribe registers a listener for session changes and returns an
	// unsubscribe function.
	Subscribe(listener SessionListener) (unsubscribe func())
}
