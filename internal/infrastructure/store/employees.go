package store

import (
	"context"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

// EmployeeRepo is the employee-collection view over the store.
type EmployeeRepo struct {
	s *Store
}

// Employees returns the repository view over the employees collection.
func (s *Store) Employees() *EmployeeRepo {
	return &EmployeeRepo{s: s}
}

func (r *EmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.data.Employees {
		if r.s.data.Employees[i].ID == id {
			clone := r.s.data.Employees[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *EmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.Employee, len(r.s.data.Employees))
	copy(out, r.s.data.Employees)
	return out, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.Employees = append(r.s.data.Employees, *emp)
	return r.s.persistLocked(ctx)
}

func (r *EmployeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Employees {
		if r.s.data.Employees[i].ID == emp.ID {
			r.s.data.Employees[i] = *emp
			return r.s.persistLocked(ctx)
		}
	}
	return domain.ErrEmployeeNotFound
}

func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Employees {
		if r.s.data.Employees[i].ID == id {
			r.s.data.Employees = append(r.s.data.Employees[:i], r.s.data.Employees[i+1:]...)
			return r.s.persistLocked(ctx)
		}
	}
	return domain.ErrEmployeeNotFound
}
