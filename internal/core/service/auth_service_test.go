package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/workforce-api/internal/core/domain"
	"github.com/staffdesk/workforce-api/internal/core/ports"
)

func newTestAuthService(repo *stubAccountRepo) (*AuthService, *stubSessionStore, *stubVerificationStore, *stubEnqueuer) {
	sessions := newStubSessionStore()
	verification := newStubVerificationStore()
	enqueuer := &stubEnqueuer{}
	svc := NewAuthService(repo, sessions, verification, enqueuer, &stubAuditRepo{}, "secret", time.Hour, testLogger())
	return svc, sessions, verification, enqueuer
}

func seedAccount(t *testing.T, repo *stubAccountRepo, email, password, role string, verified bool) *domain.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	account := &domain.Account{
		ID:           "acc-" + email,
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Verified:     verified,
	}
	if err := repo.Create(context.Background(), account); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return account
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _, _, enqueuer := newTestAuthService(repo)

	account, err := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Alice",
		LastName:  "Nguyen",
		Email:     "alice@example.com",
		Password:  "hunter22",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if account.PasswordHash == "hunter22" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("hunter22")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if account.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, account.Role)
	}
	if account.Verified {
		t.Fatalf("new registration must start unverified")
	}
	if len(enqueuer.queued) != 1 || enqueuer.queued[0].Kind != ports.NotifyVerification {
		t.Fatalf("expected queued verification notification, got %+v", enqueuer.queued)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _, _, _ := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "", FirstName: "X", Password: "longenough"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty email, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "x@example.com", FirstName: "X", Password: "short"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
	if len(repo.accounts) != 0 {
		t.Fatalf("rejected registration must not create accounts")
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _, _, _ := newTestAuthService(repo)
	seedAccount(t, repo, "bob@example.com", "original1", domain.RoleUser, true)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Bob",
		Email:     "bob@example.com",
		Password:  "another1",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.accounts) != 1 {
		t.Fatalf("duplicate registration must leave accounts unchanged, have %d", len(repo.accounts))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc, sessions, _, _ := newTestAuthService(repo)
	seedAccount(t, repo, "carol@example.com", "s3cret99", domain.RoleAdmin, true)

	token, account, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if account == nil || account.Email != "carol@example.com" {
		t.Fatalf("unexpected account: %+v", account)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		t.Fatalf("expected jti claim")
	}
	if sessions.sessions[jti] != "carol@example.com" {
		t.Fatalf("expected live session for %q, have %v", jti, sessions.sessions)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _, _, _ := newTestAuthService(repo)
	seedAccount(t, repo, "dave@example.com", "goodpass", domain.RoleUser, true)

	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _, _, _ := newTestAuthService(repo)

	// An unknown email reads the same as a wrong password to the caller.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Unverified(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _, verification, _ := newTestAuthService(repo)
	seedAccount(t, repo, "erin@example.com", "validpass", domain.RoleUser, false)

	if _, _, err := svc.Login(context.Background(), "erin@example.com", "validpass"); !errors.Is(err, domain.ErrUnverifiedAccount) {
		t.Fatalf("expected ErrUnverifiedAccount, got %v", err)
	}
	if !verification.pending["erin@example.com"] {
		t.Fatalf("unverified login must mark the account pending verification")
	}
}

func TestAuthService_Verify_Idempotent(t *testing.T) {
	repo := newStubAccountRepo()
	svc, _, verification, _ := newTestAuthService(repo)
	account := seedAccount(t, repo, "frank@example.com", "validpass", domain.RoleUser, false)
	verification.pending[account.Email] = true

	if err := svc.Verify(context.Background(), "frank@example.com"); err != nil {
		t.Fatalf("first verify failed: %v", err)
	}
	stored, err := repo.FindByEmail(context.Background(), "frank@example.com")
	if err != nil {
		t.Fatalf("find after verify: %v", err)
	}
	if !stored.Verified {
		t.Fatalf("account not marked verified")
	}
	if verification.pending["frank@example.com"] {
		t.Fatalf("pending flag should be cleared")
	}

	// Second call is a no-op, not an error.
	if err := svc.Verify(context.Background(), "frank@example.com"); err != nil {
		t.Fatalf("repeat verify failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "frank@example.com", "validpass"); err != nil {
		t.Fatalf("login after verify failed: %v", err)
	}
}

func TestAuthService_Logout_RemovesSession(t *testing.T) {
	repo := newStubAccountRepo()
	svc, sessions, _, _ := newTestAuthService(repo)
	seedAccount(t, repo, "gina@example.com", "validpass", domain.RoleUser, true)

	token, _, err := svc.Login(context.Background(), "gina@example.com", "validpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	jti := claims["jti"].(string)

	if err := svc.Logout(context.Background(), jti); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok := sessions.sessions[jti]; ok {
		t.Fatalf("session should be gone after logout")
	}
}
