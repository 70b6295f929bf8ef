// Package service defines the contracts for external collaborators the
// domain depends on. Implementations live in the infra layer.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// Credentials are the bearer tokens issued by the backend on login.
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// RegistrationForm carries the fields the backend registration endpoint
// expects. Client-side validation happens before this form is sent.
type RegistrationForm struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Password       string
	RepeatPassword string
}

// AuthGateway is the authentication surface of the marketplace backend.
type AuthGateway interface {
	// Login exchanges credentials for tokens and the user profile.
	// Returns ErrInvalidCredentials or ErrAccountNotVerified on 4xx,
	// a NetworkError on transport failure, ErrServer on 5xx.
	Login(ctx context.Context, email, password string) (*Credentials, *entity.UserProfile, error)

	// Register submits a registration and returns the backend's
	// human-readable confirmation message. It never signs the user in.
	Register(ctx context.Context, form RegistrationForm) (string, error)

	// Activate confirms an email activation link.
	Activate(ctx context.Context, uid, token string) error
}
