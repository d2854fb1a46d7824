package service

import (
	"context"
	"errors"
	"testing"

	"github.com/staffdesk/workforce-api/internal/core/domain"
	"github.com/staffdesk/workforce-api/internal/core/ports"
)

func TestDepartmentService_Create_NameRequired(t *testing.T) {
	repo := newStubDepartmentRepo()
	svc := NewDepartmentService(repo, &stubAuditRepo{}, testLogger())

	if _, err := svc.Create(context.Background(), "admin@example.com", ports.DepartmentInput{Description: "no name"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	dept, err := svc.Create(context.Background(), "admin@example.com", ports.DepartmentInput{Name: "Finance", Description: "money"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if dept.ID == "" || dept.Name != "Finance" {
		t.Fatalf("unexpected department: %+v", dept)
	}
}

func TestDepartmentService_Update_PreservesID(t *testing.T) {
	repo := newStubDepartmentRepo()
	svc := NewDepartmentService(repo, &stubAuditRepo{}, testLogger())

	dept, err := svc.Create(context.Background(), "admin@example.com", ports.DepartmentInput{Name: "Ops"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), "admin@example.com", dept.ID, ports.DepartmentInput{Name: "Operations", Description: "renamed"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != dept.ID {
		t.Fatalf("id changed on update: %q vs %q", updated.ID, dept.ID)
	}
	if updated.Name != "Operations" || updated.Description != "renamed" {
		t.Fatalf("unexpected department: %+v", updated)
	}

	if _, err := svc.Update(context.Background(), "admin@example.com", "dep-missing", ports.DepartmentInput{Name: "X"}); !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestDepartmentService_Update_OmittedDescriptionUnchanged(t *testing.T) {
	repo := newStubDepartmentRepo()
	svc := NewDepartmentService(repo, &stubAuditRepo{}, testLogger())

	dept, err := svc.Create(context.Background(), "admin@example.com", ports.DepartmentInput{Name: "Ops", Description: "day-to-day operations"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), "admin@example.com", dept.ID, ports.DepartmentInput{Name: "Operations"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Description != "day-to-day operations" {
		t.Fatalf("omitted description must stay unchanged, got %q", updated.Description)
	}
}

func TestDepartmentService_Delete(t *testing.T) {
	repo := newStubDepartmentRepo()
	svc := NewDepartmentService(repo, &stubAuditRepo{}, testLogger())

	dept, _ := svc.Create(context.Background(), "admin@example.com", ports.DepartmentInput{Name: "Temp"})
	if err := svc.Delete(context.Background(), "admin@example.com", dept.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "admin@example.com", dept.ID); !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound on repeat delete, got %v", err)
	}
}
