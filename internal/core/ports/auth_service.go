package ports

import (
	"context"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

// RegisterInput carries the self-registration fields. Registered accounts
// always start as unverified users.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
	// Login returns a signed session token on success. Unverified accounts
	// fail with ErrUnverifiedAccount so the caller can restart verification.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	// Verify marks the account verified. Idempotent.
	Verify(ctx context.Context, email string) error
	Logout(ctx context.Context, sessionID string) error
}
