package store

import (
	"context"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

// AccountRepo is the account-collection view over the store.
type AccountRepo struct {
	s *Store
}

// Accounts returns the repository view over the accounts collection.
func (s *Store) Accounts() *AccountRepo {
	return &AccountRepo{s: s}
}

func cloneAccount(a *domain.Account) *domain.Account {
	clone := *a
	return &clone
}

func (r *AccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.data.Accounts {
		if r.s.data.Accounts[i].Email == email {
			return cloneAccount(&r.s.data.Accounts[i]), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *AccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.data.Accounts {
		if r.s.data.Accounts[i].ID == id {
			return cloneAccount(&r.s.data.Accounts[i]), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *AccountRepo) List(_ context.Context) ([]domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.Account, len(r.s.data.Accounts))
	copy(out, r.s.data.Accounts)
	return out, nil
}

// Create enforces email uniqueness at the persistence boundary as well as in
// the service layer.
func (r *AccountRepo) Create(ctx context.Context, account *domain.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Accounts {
		if r.s.data.Accounts[i].Email == account.Email {
			return domain.ErrEmailTaken
		}
	}
	r.s.data.Accounts = append(r.s.data.Accounts, *account)
	return r.s.persistLocked(ctx)
}

func (r *AccountRepo) Update(ctx context.Context, account *domain.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Accounts {
		if r.s.data.Accounts[i].ID == account.ID {
			r.s.data.Accounts[i] = *account
			return r.s.persistLocked(ctx)
		}
	}
	return domain.ErrAccountNotFound
}

func (r *AccountRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Accounts {
		if r.s.data.Accounts[i].ID == id {
			r.s.data.Accounts = append(r.s.data.Accounts[:i], r.s.data.Accounts[i+1:]...)
			return r.s.persistLocked(ctx)
		}
	}
	return domain.ErrAccountNotFound
}
