package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/DanielMb24/SchoolManager/internal/core/domain"
)

type stubVerifier struct {
	state domain.SessionState
	seen  string
}

func (s *stubVerifier) Check(_ context.Context, token string) (domain.SessionState, error) {
	s.seen = token
	return s.state, nil
}

func TestSession_InjectsPrincipal(t *testing.T) {
	e := echo.New()
	principal := &domain.Principal{ID: "acc_1", Role: domain.RoleAdministrator}
	verifier := &stubVerifier{state: domain.Authenticated(principal)}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sometoken"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(verifier)(func(c echo.Context) error {
		called = true
		if got := PrincipalFromContext(c); got == nil || got.ID != "acc_1" {
			t.Fatalf("principal not injected: %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if verifier.seen != "sometoken" {
		t.Fatalf("cookie token not passed to verifier, got %q", verifier.seen)
	}
}

func TestSession_AnonymousPassesThrough(t *testing.T) {
	e := echo.New()
	verifier := &stubVerifier{state: domain.Unauthenticated(false)}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(verifier)(func(c echo.Context) error {
		if PrincipalFromContext(c) != nil {
			t.Fatalf("anonymous request must not carry a principal")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTokenFromRequest_BearerFallback(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	c := e.NewContext(req, httptest.NewRecorder())

	if got := TokenFromRequest(c); got != "header-token" {
		t.Fatalf("expected bearer token, got %q", got)
	}
}

func TestTokenFromRequest_CookieWins(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")
	c := e.NewContext(req, httptest.NewRecorder())

	if got := TokenFromRequest(c); got != "cookie-token" {
		t.Fatalf("expected cookie token to take precedence, got %q", got)
	}
}

func TestTokenFromRequest_None(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	c := e.NewContext(req, httptest.NewRecorder())

	if got := TokenFromRequest(c); got != "" {
		t.Fatalf("expected no token, got %q", got)
	}
}

func TestRequireRole_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(principalKey, &domain.Principal{ID: "acc_1", Role: domain.RoleTeacher})

	called := false
	handler := RequireRole(domain.RoleAdministrator, domain.RoleTeacher)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireRole_ForbidsWrongRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(principalKey, &domain.Principal{ID: "acc_2", Role: domain.RoleStudent})

	handler := RequireRole(domain.RoleAdministrator)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_RejectsAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireRole(domain.RoleAdministrator)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
