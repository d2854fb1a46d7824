package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/workforce-api/internal/core/domain"
	"github.com/staffdesk/workforce-api/internal/core/ports"
)

// AccountService implements admin operations on accounts.
type AccountService struct {
	accounts ports.AccountRepository
	audit    ports.AuditRepository
	log      zerolog.Logger
}

func NewAccountService(accounts ports.AccountRepository, audit ports.AuditRepository, log zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, audit: audit, log: log}
}

// List projects all accounts into admin rows. The actor's own row carries no
// delete action.
func (s *AccountService) List(ctx context.Context, actorEmail string) ([]ports.AccountRow, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ports.AccountRow, 0, len(accounts))
	for i := range accounts {
		a := &accounts[i]
		actions := []string{ports.ActionEdit, ports.ActionResetPassword}
		if a.Email != actorEmail {
			actions = append(actions, ports.ActionDelete)
		}
		rows = append(rows, ports.AccountRow{
			ID:       a.ID,
			Name:     a.FullName(),
			Email:    a.Email,
			Role:     a.Role,
			Verified: a.Verified,
			Actions:  actions,
		})
	}
	return rows, nil
}

// Create lets an admin provision an account with an explicit role and an
// immediately usable verified flag.
func (s *AccountService) Create(ctx context.Context, actorEmail string, input ports.CreateAccountInput) (*domain.Account, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.FirstName == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleUser {
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
		Role:         input.Role,
		Verified:     input.Verified,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.log.Info().Str("email", email).Str("role", input.Role).Str("actor", actorEmail).Msg("account created by admin")
	recordAudit(ctx, s.audit, s.log, actorEmail, "create", "account", account.ID)
	return account, nil
}

// Update merges non-empty fields into the account, preserving its
// identifier and email.
func (s *AccountService) Update(ctx context.Context, actorEmail, id string, input ports.UpdateAccountInput) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		account.FirstName = input.FirstName
	}
	if input.LastName != "" {
		account.LastName = input.LastName
	}
	if input.Role != "" {
		if input.Role != domain.RoleAdmin && input.Role != domain.RoleUser {
			return nil, domain.ErrInvalidInput
		}
		account.Role = input.Role
	}
	if input.Verified != nil {
		account.Verified = *input.Verified
	}
	if input.Password != "" {
		if len(input.Password) < minPasswordLength {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = string(hash)
	}
	account.UpdatedAt = time.Now().UTC()

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, s.log, actorEmail, "update", "account", account.ID)
	return account, nil
}

// ResetPassword replaces the account's credential with a fresh hash.
func (s *AccountService) ResetPassword(ctx context.Context, actorEmail, id, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return domain.ErrInvalidInput
	}
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	account.PasswordHash = string(hash)
	account.UpdatedAt = time.Now().UTC()
	if err := s.accounts.Update(ctx, account); err != nil {
		return err
	}
	s.log.Info().Str("email", account.Email).Str("actor", actorEmail).Msg("password reset")
	recordAudit(ctx, s.audit, s.log, actorEmail, "reset_password", "account", account.ID)
	return nil
}

// Delete removes an account. The acting admin cannot delete their own
// account.
func (s *AccountService) Delete(ctx context.Context, actorEmail, id string) error {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if account.Email == actorEmail {
		return domain.ErrSelfDeletionForbidden
	}
	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("email", account.Email).Str("actor", actorEmail).Msg("account deleted")
	recordAudit(ctx, s.audit, s.log, actorEmail, "delete", "account", id)
	return nil
}
