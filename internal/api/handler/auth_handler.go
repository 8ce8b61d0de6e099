package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DanielMb24/SchoolManager/internal/api/middleware"
	"github.com/DanielMb24/SchoolManager/internal/core/domain"
	"github.com/DanielMb24/SchoolManager/internal/core/ports"
)

// AuthHandler binds the auth subsystem to HTTP: registration, login with a
// cookie-delivered session token, logout, and the session status check.
type AuthHandler struct {
	authService   ports.AuthService
	sessions      ports.SessionVerifier
	cookieTTL     time.Duration
	secureCookies bool
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionVerifier, cookieTTL time.Duration, secureCookies bool) *AuthHandler {
	if cookieTTL <= 0 {
		cookieTTL = time.Hour
	}
	return &AuthHandler{
		authService:   authService,
		sessions:      sessions,
		cookieTTL:     cookieTTL,
		secureCookies: secureCookies,
	}
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration form"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	id, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Surname:            req.Surname,
		GivenName:          req.GivenName,
		Role:               domain.Role(req.Role),
		Identifier:         req.Identifier,
		Secret:             req.Secret,
		SecretConfirmation: req.SecretConfirmation,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingField),
			errors.Is(err, domain.ErrSecretMismatch),
			errors.Is(err, domain.ErrSecretTooShort),
			errors.Is(err, domain.ErrIdentifierRequired):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrIdentifierTaken):
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{ID: id})
}

// Login authenticates an identifier/secret pair, returns the principal and
// delivers the session token both in the body and as a protected cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, principal, err := h.authService.Login(c.Request().Context(), req.Identifier, req.Secret)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingField):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrTooManyAttempts):
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: err.Error()})
		}
		return err
	}

	setSessionCookie(c, token, h.cookieTTL, h.secureCookies)
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: principal})
}

// Logout clears the session cookie. The token is self-contained, so there is
// nothing to revoke server-side; it simply ages out.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, h.secureCookies)
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// Status reports the current authentication state. It always answers 200:
// missing, expired or stale tokens degrade to {authenticated:false}, and a
// stale token is cleared from the transport on the way out.
//
// @Summary      Session status
// @Tags         auth
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /auth/status [get]
func (h *AuthHandler) Status(c echo.Context) error {
	state, err := h.sessions.Check(c.Request().Context(), middleware.TokenFromRequest(c))
	if err != nil {
		return err
	}

	if state.ClearToken {
		clearSessionCookie(c, h.secureCookies)
	}
	return c.JSON(http.StatusOK, statusResponse{
		Authenticated: state.Authenticated,
		User:          state.Principal,
	})
}
