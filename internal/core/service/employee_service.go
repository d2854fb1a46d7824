package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffdesk/workforce-api/internal/core/domain"
	"github.com/staffdesk/workforce-api/internal/core/ports"
)

// EmployeeService implements admin operations on employees.
type EmployeeService struct {
	employees   ports.EmployeeRepository
	departments ports.DepartmentRepository
	accounts    ports.AccountRepository
	audit       ports.AuditRepository
	log         zerolog.Logger
}

func NewEmployeeService(
	employees ports.EmployeeRepository,
	departments ports.DepartmentRepository,
	accounts ports.AccountRepository,
	audit ports.AuditRepository,
	log zerolog.Logger,
) *EmployeeService {
	return &EmployeeService{
		employees:   employees,
		departments: departments,
		accounts:    accounts,
		audit:       audit,
		log:         log,
	}
}

// List projects employees with their department names resolved. A dangling
// department reference leaves DepartmentName empty rather than failing the
// whole listing.
func (s *EmployeeService) List(ctx context.Context) ([]ports.EmployeeRow, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(departments))
	for _, d := range departments {
		names[d.ID] = d.Name
	}

	rows := make([]ports.EmployeeRow, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, ports.EmployeeRow{
			ID:             e.ID,
			AccountEmail:   e.AccountEmail,
			Position:       e.Position,
			DepartmentID:   e.DepartmentID,
			DepartmentName: names[e.DepartmentID],
			HiredAt:        e.HiredAt,
		})
	}
	return rows, nil
}

// Create links an existing account to an existing department.
func (s *EmployeeService) Create(ctx context.Context, actorEmail string, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	if input.AccountEmail == "" || input.DepartmentID == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.accounts.FindByEmail(ctx, input.AccountEmail); err != nil {
		return nil, err
	}
	if _, err := s.departments.FindByID(ctx, input.DepartmentID); err != nil {
		return nil, err
	}

	hired := input.HiredAt
	if hired.IsZero() {
		hired = time.Now().UTC()
	}
	emp := &domain.Employee{
		ID:           newID("emp"),
		AccountEmail: input.AccountEmail,
		DepartmentID: input.DepartmentID,
		Position:     input.Position,
		HiredAt:      hired,
	}
	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, err
	}
	s.log.Info().Str("employee", emp.AccountEmail).Str("actor", actorEmail).Msg("employee created")
	recordAudit(ctx, s.audit, s.log, actorEmail, "create", "employee", emp.ID)
	return emp, nil
}

// Update merges the input into an existing employee. Referenced accounts
// and departments must exist.
func (s *EmployeeService) Update(ctx context.Context, actorEmail, id string, input ports.UpdateEmployeeInput) (*domain.Employee, error) {
	emp, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.AccountEmail != "" && input.AccountEmail != emp.AccountEmail {
		if _, err := s.accounts.FindByEmail(ctx, input.AccountEmail); err != nil {
			return nil, err
		}
		emp.AccountEmail = input.AccountEmail
	}
	if input.DepartmentID != "" && input.DepartmentID != emp.DepartmentID {
		if _, err := s.departments.FindByID(ctx, input.DepartmentID); err != nil {
			return nil, err
		}
		emp.DepartmentID = input.DepartmentID
	}
	if input.Position != "" {
		emp.Position = input.Position
	}
	if !input.HiredAt.IsZero() {
		emp.HiredAt = input.HiredAt
	}
	if err := s.employees.Update(ctx, emp); err != nil {
		return nil, err
	}
	s.log.Info().Str("employee", emp.AccountEmail).Str("actor", actorEmail).Msg("employee updated")
	recordAudit(ctx, s.audit, s.log, actorEmail, "update", "employee", emp.ID)
	return emp, nil
}

// TransferTargets returns every department except the employee's current one.
func (s *EmployeeService) TransferTargets(ctx context.Context, employeeID string) ([]domain.Department, error) {
	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	targets := make([]domain.Department, 0, len(departments))
	for _, d := range departments {
		if d.ID != emp.DepartmentID {
			targets = append(targets, d)
		}
	}
	return targets, nil
}

// Transfer reassigns the employee to another department.
func (s *EmployeeService) Transfer(ctx context.Context, actorEmail, employeeID, departmentID string) (*domain.Employee, error) {
	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if departmentID == emp.DepartmentID {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.departments.FindByID(ctx, departmentID); err != nil {
		return nil, err
	}

	from := emp.DepartmentID
	emp.DepartmentID = departmentID
	if err := s.employees.Update(ctx, emp); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("employee", emp.AccountEmail).
		Str("from", from).
		Str("to", departmentID).
		Str("actor", actorEmail).
		Msg("employee transferred")
	recordAudit(ctx, s.audit, s.log, actorEmail, "transfer", "employee", emp.ID)
	return emp, nil
}

func (s *EmployeeService) Delete(ctx context.Context, actorEmail, id string) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, s.log, actorEmail, "delete", "employee", id)
	return nil
}
