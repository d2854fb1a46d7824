package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/workforce-api/internal/api/metrics"
	"github.com/staffdesk/workforce-api/internal/core/domain"
	"github.com/staffdesk/workforce-api/internal/core/ports"
)

const minPasswordLength = 6

// SessionStore abstracts the bearer-session allowlist (Redis). A session id
// present in the store is a live login; logout removes it.
type SessionStore interface {
	Create(ctx context.Context, sessionID, email string, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

// VerificationStore abstracts the transient pending-verification flag
// (Redis). The flag only drives the verification flow UX; the authoritative
// verified bit lives on the account.
type VerificationStore interface {
	MarkPending(ctx context.Context, email string) error
	ClearPending(ctx context.Context, email string) error
}

// AuthService implements registration, login, verification, and logout.
type AuthService struct {
	accounts     ports.AccountRepository
	sessions     SessionStore
	verification VerificationStore
	notifier     ports.NotificationEnqueuer
	audit        ports.AuditRepository
	jwtSecret    string
	tokenTTL     time.Duration
	log          zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	sessions SessionStore,
	verification VerificationStore,
	notifier ports.NotificationEnqueuer,
	audit ports.AuditRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		accounts:     accounts,
		sessions:     sessions,
		verification: verification,
		notifier:     notifier,
		audit:        audit,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
		log:          log,
	}
}

// Register creates an unverified user account and queues the verification
// notification. Registration never creates admins.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.FirstName == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(input.Password) < minPasswordLength {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:           newID("acc"),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	metrics.AccountsRegisteredTotal.Inc()
	s.log.Info().Str("email", email).Msg("account registered")
	recordAudit(ctx, s.audit, s.log, email, "register", "account", account.ID)

	if s.notifier != nil {
		s.notifier.Enqueue(ports.NotificationInput{Kind: ports.NotifyVerification, Email: email})
	}
	return account, nil
}

// Login authenticates by exact email lookup and bcrypt comparison. An
// unverified account fails with ErrUnverifiedAccount and re-enters the
// verification flow.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if !account.Verified {
		metrics.LoginsTotal.WithLabelValues("unverified").Inc()
		if s.verification != nil {
			if err := s.verification.MarkPending(ctx, email); err != nil {
				s.log.Warn().Err(err).Str("email", email).Msg("failed to mark pending verification")
			}
		}
		return "", nil, domain.ErrUnverifiedAccount
	}

	sessionID := newID("ses")
	token, err := s.generateToken(account, sessionID)
	if err != nil {
		return "", nil, err
	}
	if s.sessions != nil {
		if err := s.sessions.Create(ctx, sessionID, account.Email, s.tokenTTL); err != nil {
			return "", nil, err
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("email", email).Str("role", account.Role).Msg("login")
	recordAudit(ctx, s.audit, s.log, email, "login", "session", sessionID)

	return token, account, nil
}

// Verify marks the account verified. Calling it again for an already
// verified account is a no-op.
func (s *AuthService) Verify(ctx context.Context, email string) error {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if !account.Verified {
		account.Verified = true
		account.UpdatedAt = time.Now().UTC()
		if err := s.accounts.Update(ctx, account); err != nil {
			return err
		}
		s.log.Info().Str("email", email).Msg("account verified")
		recordAudit(ctx, s.audit, s.log, email, "verify", "account", account.ID)
	}

	if s.verification != nil {
		if err := s.verification.ClearPending(ctx, email); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("failed to clear pending verification")
		}
	}
	return nil
}

// Logout removes the session so the token stops resolving immediately.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if s.sessions == nil || sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) generateToken(account *domain.Account, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"email": account.Email,
		"role":  account.Role,
		"jti":   sessionID,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
