package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/DanielMb24/SchoolManager/internal/api/metrics"
	"github.com/DanielMb24/SchoolManager/internal/core/domain"
	"github.com/DanielMb24/SchoolManager/internal/core/ports"
)

const minSecretLength = 6

// AuthService implements registration and login on top of the account
// repository, the credential hasher and the session issuer. The throttle and
// audit sink are optional; a nil throttle disables rate limiting and a nil
// sink disables the audit trail.
type AuthService struct {
	accounts ports.AccountRepository
	hasher   ports.CredentialHasher
	issuer   ports.SessionIssuer
	throttle ports.LoginThrottle
	audit    ports.AuditSink
	log      zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	hasher ports.CredentialHasher,
	issuer ports.SessionIssuer,
	throttle ports.LoginThrottle,
	audit ports.AuditSink,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		accounts: accounts,
		hasher:   hasher,
		issuer:   issuer,
		throttle: throttle,
		audit:    audit,
		log:      log,
	}
}

// Register validates the registration form in a fixed order, hashes the
// secret and inserts the account. Identifier uniqueness is enforced by the
// repository's constraint-backed insert, not by a lookup here, so concurrent
// registrations with the same identifier cannot both succeed.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	if input.Surname == "" || input.GivenName == "" || input.Role == "" ||
		input.Secret == "" || input.SecretConfirmation == "" {
		return "", domain.ErrMissingField
	}
	if !input.Role.Valid() {
		return "", domain.ErrMissingField
	}
	if input.Secret != input.SecretConfirmation {
		return "", domain.ErrSecretMismatch
	}
	if len(input.Secret) < minSecretLength {
		return "", domain.ErrSecretTooShort
	}

	identifier := domain.NormalizeIdentifier(input.Identifier)
	if identifier == "" && input.Role.RequiresIdentifier() {
		return "", domain.ErrIdentifierRequired
	}

	digest, err := s.hasher.Hash(input.Secret)
	if err != nil {
		s.log.Error().Err(err).Msg("credential hashing failed")
		return "", err
	}

	account := &domain.Account{
		Surname:          strings.TrimSpace(input.Surname),
		GivenName:        strings.TrimSpace(input.GivenName),
		Role:             input.Role,
		Identifier:       identifier,
		CredentialDigest: digest,
		CreatedAt:        time.Now().UTC(),
	}

	id, err := s.accounts.Create(ctx, account)
	if err != nil {
		return "", err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(input.Role)).Inc()
	subject := identifier
	if subject == "" {
		subject = id
	}
	s.record(domain.AuthEvent{
		Kind:      domain.AuthEventAccountCreated,
		Subject:   subject,
		AccountID: id,
		Role:      input.Role,
		At:        time.Now().UTC(),
	})
	s.log.Info().Str("account_id", id).Str("role", string(input.Role)).Msg("account created")

	return id, nil
}

// Login authenticates an identifier/secret pair and mints a session token.
// An unknown identifier and a wrong secret produce the same
// domain.ErrInvalidCredentials so the response does not reveal which
// identifiers exist.
func (s *AuthService) Login(ctx context.Context, identifier, secret string) (string, *domain.Principal, error) {
	if identifier == "" || secret == "" {
		return "", nil, domain.ErrMissingField
	}
	identifier = domain.NormalizeIdentifier(identifier)
	if identifier == "" {
		return "", nil, domain.ErrMissingField
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooMany(ctx, identifier)
		if err != nil {
			// Fail open: an unavailable counter must not lock everyone out.
			s.log.Warn().Err(err).Msg("login throttle unavailable")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			s.record(domain.AuthEvent{
				Kind:    domain.AuthEventLoginThrottled,
				Subject: identifier,
				At:      time.Now().UTC(),
			})
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	account, err := s.accounts.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, s.failedLogin(ctx, identifier)
		}
		return "", nil, err
	}

	if !s.hasher.Verify(secret, account.CredentialDigest) {
		return "", nil, s.failedLogin(ctx, identifier)
	}

	token, err := s.issuer.Issue(account)
	if err != nil {
		s.log.Error().Err(err).Msg("session token issuance failed")
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, identifier); err != nil {
			s.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.record(domain.AuthEvent{
		Kind:      domain.AuthEventLoginSucceeded,
		Subject:   identifier,
		AccountID: account.ID,
		Role:      account.Role,
		At:        time.Now().UTC(),
	})

	return token, account.Principal(), nil
}

// failedLogin records a failed attempt and returns the undifferentiated
// credential error used for both unknown identifiers and wrong secrets.
func (s *AuthService) failedLogin(ctx context.Context, identifier string) error {
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, identifier); err != nil {
			s.log.Warn().Err(err).Msg("login throttle record failed")
		}
	}
	metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	s.record(domain.AuthEvent{
		Kind:    domain.AuthEventLoginFailed,
		Subject: identifier,
		At:      time.Now().UTC(),
	})
	return domain.ErrInvalidCredentials
}

func (s *AuthService) record(event domain.AuthEvent) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(event)
}
