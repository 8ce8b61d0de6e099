package domain

import "time"

// AuthEventKind enumerates the auditable authentication events.
type AuthEventKind string

const (
	AuthEventAccountCreated AuthEventKind = "account_created"
	AuthEventLoginSucceeded AuthEventKind = "login_succeeded"
	AuthEventLoginFailed    AuthEventKind = "login_failed"
	AuthEventLoginThrottled AuthEventKind = "login_throttled"
)

// AuthEvent is an audit-trail entry describing a single authentication
// outcome. Subject is the normalized identifier the caller presented, or the
// account id for identifier-less registrations. Events never carry secrets
// or digests.
type AuthEvent struct {
	Kind      AuthEventKind `json:"kind"`
	Subject   string        `json:"subject"`
	AccountID string        `json:"account_id,omitempty"`
	Role      Role          `json:"role,omitempty"`
	At        time.Time     `json:"at"`
}
