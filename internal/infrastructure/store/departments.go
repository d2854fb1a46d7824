package store

import (
	"context"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

// DepartmentRepo is the department-collection view over the store.
type DepartmentRepo struct {
	s *Store
}

// Departments returns the repository view over the departments collection.
func (s *Store) Departments() *DepartmentRepo {
	return &DepartmentRepo{s: s}
}

func (r *DepartmentRepo) FindByID(_ context.Context, id string) (*domain.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.data.Departments {
		if r.s.data.Departments[i].ID == id {
			clone := r.s.data.Departments[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrDepartmentNotFound
}

func (r *DepartmentRepo) List(_ context.Context) ([]domain.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.Department, len(r.s.data.Departments))
	copy(out, r.s.data.Departments)
	return out, nil
}

func (r *DepartmentRepo) Create(ctx context.Context, dept *domain.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.Departments = append(r.s.data.Departments, *dept)
	return r.s.persistLocked(ctx)
}

func (r *DepartmentRepo) Update(ctx context.Context, dept *domain.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Departments {
		if r.s.data.Departments[i].ID == dept.ID {
			r.s.data.Departments[i] = *dept
			return r.s.persistLocked(ctx)
		}
	}
	return domain.ErrDepartmentNotFound
}

// Delete removes the department without cascading: employees keep their
// department reference, which then resolves to not found.
func (r *DepartmentRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Departments {
		if r.s.data.Departments[i].ID == id {
			r.s.data.Departments = append(r.s.data.Departments[:i], r.s.data.Departments[i+1:]...)
			return r.s.persistLocked(ctx)
		}
	}
	return domain.ErrDepartmentNotFound
}
