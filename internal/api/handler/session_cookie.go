package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DanielMb24/SchoolManager/internal/api/middleware"
)

// setSessionCookie delivers the token as a protected cookie: HttpOnly so
// scripts cannot read it, Secure plus SameSite=Strict in production, and
// SameSite=Lax in development where the SPA runs on another origin.
func setSessionCookie(c echo.Context, token string, ttl time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: cookieSameSite(secure),
		MaxAge:   int(ttl.Seconds()),
	})
}

// clearSessionCookie overwrites the session cookie with an expired one.
func clearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: cookieSameSite(secure),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

func cookieSameSite(secure bool) http.SameSite {
	if secure {
		return http.SameSiteStrictMode
	}
	return http.SameSiteLaxMode
}
