package service

// TokenInspector examines a stored bearer credential locally, without
// contacting the backend. Used to discard obviously expired sessions during
// rehydration; the backend remains the authority on validity.
type TokenInspector interface {
	// Expired reports whether the token carries an exp claim in the past.
	// Opaque or claim-less tokens are never reported as expired.
	Expired(token string) bool
}
