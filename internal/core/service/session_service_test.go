package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/DanielMb24/SchoolManager/internal/core/domain"
)

func seedAccount(t *testing.T, repo *stubAccountRepo, identifier string) *domain.Account {
	t.Helper()
	account := &domain.Account{
		Surname:          "Ndiaye",
		GivenName:        "Moussa",
		Role:             domain.RoleTeacher,
		Identifier:       identifier,
		CredentialDigest: "$2a$04$unused",
		CreatedAt:        time.Now().UTC(),
	}
	id, err := repo.Create(context.Background(), account)
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	account.ID = id
	return account
}

func TestSessionService_IssueAndCheck(t *testing.T) {
	repo := newStubAccountRepo()
	account := seedAccount(t, repo, "moussa@example.com")
	svc := NewSessionService(repo, []byte("test-secret"), time.Hour, zerolog.Nop())

	token, err := svc.Issue(account)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	state, err := svc.Check(context.Background(), token)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !state.Authenticated || state.ClearToken {
		t.Fatalf("expected authenticated state, got %+v", state)
	}
	if state.Principal == nil || state.Principal.ID != account.ID || state.Principal.Role != domain.RoleTeacher {
		t.Fatalf("unexpected principal: %+v", state.Principal)
	}
}

func TestSessionService_NoToken(t *testing.T) {
	svc := NewSessionService(newStubAccountRepo(), []byte("test-secret"), time.Hour, zerolog.Nop())

	state, err := svc.Check(context.Background(), "")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if state.Authenticated {
		t.Fatalf("missing token must be unauthenticated")
	}
	if state.ClearToken {
		t.Fatalf("missing token is not an error, nothing to clear")
	}
}

func TestSessionService_TamperedToken(t *testing.T) {
	repo := newStubAccountRepo()
	account := seedAccount(t, repo, "moussa@example.com")

	svc := NewSessionService(repo, []byte("test-secret"), time.Hour, zerolog.Nop())
	other := NewSessionService(repo, []byte("another-secret"), time.Hour, zerolog.Nop())

	token, err := other.Issue(account)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	state, err := svc.Check(context.Background(), token)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if state.Authenticated {
		t.Fatalf("token signed with a different secret must not authenticate")
	}
	if !state.ClearToken {
		t.Fatalf("tampered token should be cleared")
	}

	state, err = svc.Check(context.Background(), "not-a-token")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if state.Authenticated || !state.ClearToken {
		t.Fatalf("garbage token should be unauthenticated and cleared, got %+v", state)
	}
}

func TestSessionService_Expiry(t *testing.T) {
	repo := newStubAccountRepo()
	account := seedAccount(t, repo, "moussa@example.com")
	svc := NewSessionService(repo, []byte("test-secret"), time.Hour, zerolog.Nop())

	issuedAt := time.Now().UTC()
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(account)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	svc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	state, err := svc.Check(context.Background(), token)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !state.Authenticated {
		t.Fatalf("token must still be valid one minute before expiry")
	}

	svc.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	state, err = svc.Check(context.Background(), token)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if state.Authenticated {
		t.Fatalf("token must be rejected after expiry")
	}
	if !state.ClearToken {
		t.Fatalf("expired token should be cleared")
	}
}

func TestSessionService_DeletedAccount(t *testing.T) {
	repo := newStubAccountRepo()
	account := seedAccount(t, repo, "moussa@example.com")
	svc := NewSessionService(repo, []byte("test-secret"), time.Hour, zerolog.Nop())

	token, err := svc.Issue(account)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	repo.remove(account.ID)

	state, err := svc.Check(context.Background(), token)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if state.Authenticated {
		t.Fatalf("a signed token must not outlive its account")
	}
	if !state.ClearToken {
		t.Fatalf("stale token should be cleared")
	}
}

func TestNewSessionService_TTLFallback(t *testing.T) {
	svc := NewSessionService(newStubAccountRepo(), []byte("test-secret"), 0, zerolog.Nop())
	if svc.ttl != defaultSessionTTL {
		t.Fatalf("expected default TTL, got %v", svc.ttl)
	}
}
