package ports

import (
	"context"
	"time"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
// Email is the unique lookup key.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id string) error
}

// DepartmentRepository defines persistence operations for departments.
type DepartmentRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id string) error
}

// EmployeeRepository defines persistence operations for employees.
type EmployeeRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id string) error
}

// RequestRepository defines persistence operations for item requests.
// Requests are never deleted. Resolution goes through Resolve rather than a
// general update so the pending check and the status write happen atomically
// against the stored record.
type RequestRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Request, error)
	List(ctx context.Context) ([]domain.Request, error)
	ListByRequester(ctx context.Context, email string) ([]domain.Request, error)
	Create(ctx context.Context, req *domain.Request) error
	// Resolve transitions the stored request to status if its live status
	// allows it, and fails with ErrAlreadyResolved otherwise.
	Resolve(ctx context.Context, id string, status domain.RequestStatus, resolvedBy string, resolvedAt time.Time) (*domain.Request, error)
}

// AuditRepository persists the audit trail of mutations and auth events.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuditEvent) error
}
