package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/staffdesk/workforce-api/internal/core/domain"
	"github.com/staffdesk/workforce-api/internal/core/ports"
)

// DepartmentService implements admin operations on departments.
type DepartmentService struct {
	departments ports.DepartmentRepository
	audit       ports.AuditRepository
	log         zerolog.Logger
}

func NewDepartmentService(departments ports.DepartmentRepository, audit ports.AuditRepository, log zerolog.Logger) *DepartmentService {
	return &DepartmentService{departments: departments, audit: audit, log: log}
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.departments.List(ctx)
}

func (s *DepartmentService) Create(ctx context.Context, actorEmail string, input ports.DepartmentInput) (*domain.Department, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	dept := &domain.Department{
		ID:          newID("dep"),
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, err
	}
	s.log.Info().Str("department", dept.Name).Str("actor", actorEmail).Msg("department created")
	recordAudit(ctx, s.audit, s.log, actorEmail, "create", "department", dept.ID)
	return dept, nil
}

// Update merges the input into the existing record, preserving its id. An
// empty Description leaves the stored value unchanged, matching account
// update semantics.
func (s *DepartmentService) Update(ctx context.Context, actorEmail, id string, input ports.DepartmentInput) (*domain.Department, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	dept, err := s.departments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dept.Name = input.Name
	if input.Description != "" {
		dept.Description = input.Description
	}
	if err := s.departments.Update(ctx, dept); err != nil {
		return nil, err
	}
	recordAudit(ctx, s.audit, s.log, actorEmail, "update", "department", dept.ID)
	return dept, nil
}

func (s *DepartmentService) Delete(ctx context.Context, actorEmail, id string) error {
	if err := s.departments.Delete(ctx, id); err != nil {
		return err
	}
	recordAudit(ctx, s.audit, s.log, actorEmail, "delete", "department", id)
	return nil
}
