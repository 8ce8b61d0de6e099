package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/DanielMb24/SchoolManager/internal/api/metrics"
	"github.com/DanielMb24/SchoolManager/internal/core/domain"
	"github.com/DanielMb24/SchoolManager/internal/core/ports"
)

const defaultSessionTTL = time.Hour

// SessionService mints and verifies signed session tokens. The signing
// secret is an explicit constructor argument, never an ambient global, so
// each test run can instantiate the service with its own secret.
type SessionService struct {
	accounts ports.AccountRepository
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

func NewSessionService(accounts ports.AccountRepository, secret []byte, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{
		accounts: accounts,
		secret:   secret,
		ttl:      ttl,
		now:      time.Now,
		log:      log,
	}
}

// Issue mints an HS256 token carrying the account's id and role, valid for
// the configured TTL.
func (s *SessionService) Issue(account *domain.Account) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":  account.ID,
		"role": string(account.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Check resolves a token to a session state. The token claims alone are not
// trusted: a valid signature still requires the account to exist in current
// storage, so deleting an account invalidates its outstanding tokens on the
// next check. Invalid, expired or stale tokens degrade to an unauthenticated
// state with ClearToken set; only repository infrastructure faults surface
// as errors.
func (s *SessionService) Check(ctx context.Context, token string) (domain.SessionState, error) {
	if token == "" {
		metrics.SessionChecksTotal.WithLabelValues("unauthenticated").Inc()
		return domain.Unauthenticated(false), nil
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !tkn.Valid {
		metrics.SessionChecksTotal.WithLabelValues("stale").Inc()
		return domain.Unauthenticated(true), nil
	}

	id, err := claims.GetSubject()
	if err != nil || id == "" {
		metrics.SessionChecksTotal.WithLabelValues("stale").Inc()
		return domain.Unauthenticated(true), nil
	}

	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// Token outlived the account. The claims are stale; the
			// transport must drop the token.
			metrics.SessionChecksTotal.WithLabelValues("stale").Inc()
			return domain.Unauthenticated(true), nil
		}
		return domain.SessionState{}, err
	}

	metrics.SessionChecksTotal.WithLabelValues("authenticated").Inc()
	return domain.Authenticated(account.Principal()), nil
}
