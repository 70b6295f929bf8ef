// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// UserProfile holds the identity information of the signed-in user as
// reported by the marketplace backend.
type UserProfile struct {
	ID        string // Backend-assigned user identifier.
	Email     string // The user's primary contact email, used as the login identifier.
	FirstName string
	LastName  string
	Phone     string
	Verified  bool // Whether the email address has been activated.
}

// DisplayName returns the human-readable name for the profile.
func (p *UserProfile) DisplayName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.Email
	}
}

// Session is the authenticated identity and credential of the current client.
// Invariant: Profile is non-nil if and only if AccessToken is non-empty.
type Session struct {
	AccessToken  string       // Opaque bearer credential presented to the backend.
	RefreshToken string       // Long-lived credential, stored but not used by this client directly.
	Profile      *UserProfile // Identity of the signed-in user.
	SignedInAt   time.Time    // When this session was established or rehydrated.
}

// Valid reports whether the session upholds the token/profile invariant and
// actually represents a signed-in user.
func (s *Session) Valid() bool {
	if s == nil {
		return false
	}

	return s.AccessToken != "" && s.Profile != nil
}
