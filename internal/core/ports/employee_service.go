package ports

import (
	"context"
	"time"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

// EmployeeRow is the projection of an employee for admin list views.
// DepartmentName is resolved from the id reference; a dangling reference
// leaves it empty.
type EmployeeRow struct {
	ID             string
	AccountEmail   string
	Position       string
	DepartmentID   string
	DepartmentName string
	HiredAt        time.Time
}

// CreateEmployeeInput links an existing account to an existing department.
type CreateEmployeeInput struct {
	AccountEmail string
	DepartmentID string
	Position     string
	HiredAt      time.Time
}

// UpdateEmployeeInput merges into an existing employee. Empty strings and a
// zero HiredAt leave the field unchanged; a new account email or department
// id must reference an existing record.
type UpdateEmployeeInput struct {
	AccountEmail string
	DepartmentID string
	Position     string
	HiredAt      time.Time
}

// EmployeeService defines admin operations on employees.
type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeRow, error)
	Create(ctx context.Context, actorEmail string, input CreateEmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, actorEmail, id string, input UpdateEmployeeInput) (*domain.Employee, error)
	// TransferTargets returns all departments except the employee's current one.
	TransferTargets(ctx context.Context, employeeID string) ([]domain.Department, error)
	// Transfer reassigns the employee's department reference.
	Transfer(ctx context.Context, actorEmail, employeeID, departmentID string) (*domain.Employee, error)
	Delete(ctx context.Context, actorEmail, id string) error
}
