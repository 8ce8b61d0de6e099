package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/DanielMb24/SchoolManager/internal/core/domain"
	"github.com/DanielMb24/SchoolManager/internal/core/ports"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// principalKey is the echo context key holding the verified principal.
const principalKey = "principal"

// TokenFromRequest extracts the session token from the request: the session
// cookie first, then a Bearer Authorization header. Returns "" when neither
// is present, which the session verifier treats as "no session".
func TokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// Session verifies the session token against the signing secret and current
// account storage, and injects the resulting principal into the context.
// Anonymous and stale-token requests pass through without a principal; route
// guards decide whether that is acceptable.
func Session(sessions ports.SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state, err := sessions.Check(c.Request().Context(), TokenFromRequest(c))
			if err != nil {
				return err
			}
			if state.Authenticated {
				c.Set(principalKey, state.Principal)
			}
			return next(c)
		}
	}
}

// PrincipalFromContext returns the principal injected by Session, or nil for
// anonymous requests.
func PrincipalFromContext(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}

// RequireRole enforces role-based access control: the request must carry an
// authenticated principal whose role is in the allowed set.
func RequireRole(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFromContext(c)
			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !principal.Role.OneOf(allowed...) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": domain.ErrForbidden.Error()})
			}
			return next(c)
		}
	}
}
