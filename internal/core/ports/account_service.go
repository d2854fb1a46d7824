package ports

import (
	"context"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

// Account row actions surfaced to admin sessions.
const (
	ActionEdit          = "edit"
	ActionDelete        = "delete"
	ActionResetPassword = "reset_password"
)

// AccountRow is the projection of an account for admin list views. Actions
// carries the operations available to the acting session; delete is omitted
// for the actor's own row.
type AccountRow struct {
	ID       string
	Name     string
	Email    string
	Role     string
	Verified bool
	Actions  []string
}

// CreateAccountInput carries admin account creation fields. Unlike
// self-registration, an admin may pick the role and verify immediately.
type CreateAccountInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	Verified  bool
}

// UpdateAccountInput merges into an existing account. Empty strings leave
// the field unchanged; nil Verified leaves the flag unchanged; a non-empty
// Password resets the credential.
type UpdateAccountInput struct {
	FirstName string
	LastName  string
	Role      string
	Verified  *bool
	Password  string
}

// AccountService defines admin operations on accounts.
type AccountService interface {
	List(ctx context.Context, actorEmail string) ([]AccountRow, error)
	Create(ctx context.Context, actorEmail string, input CreateAccountInput) (*domain.Account, error)
	Update(ctx context.Context, actorEmail, id string, input UpdateAccountInput) (*domain.Account, error)
	ResetPassword(ctx context.Context, actorEmail, id, newPassword string) error
	// Delete removes an account. Deleting the acting session's own account
	// fails with ErrSelfDeletionForbidden.
	Delete(ctx context.Context, actorEmail, id string) error
}
