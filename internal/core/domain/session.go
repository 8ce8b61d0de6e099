package domain

// Principal is the verified identity attached to a request after session
// validation succeeds.
type Principal struct {
	ID         string `json:"id"`
	Surname    string `json:"surname"`
	GivenName  string `json:"given_name"`
	Identifier string `json:"identifier,omitempty"`
	Role       Role   `json:"role"`
}

// SessionState is the outcome of checking a session token. There are exactly
// three shapes: no principal (anonymous or stale token), stale token that the
// transport should clear (ClearToken), or an authenticated principal.
type SessionState struct {
	Authenticated bool
	// ClearToken tells the transport to invalidate the stored token: the
	// token was present but is expired, tampered with, or references an
	// account that no longer exists.
	ClearToken bool
	Principal  *Principal
}

// Unauthenticated returns the anonymous session state.
func Unauthenticated(clearToken bool) SessionState {
	return SessionState{ClearToken: clearToken}
}

// Authenticated returns the session state for a verified principal.
func Authenticated(p *Principal) SessionState {
	return SessionState{Authenticated: true, Principal: p}
}
