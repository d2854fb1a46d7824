package ports

import (
	"context"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

// DepartmentInput carries create/update fields. Name is required; update
// merges into the existing record, preserving its identifier, and an empty
// Description leaves the stored value unchanged.
type DepartmentInput struct {
	Name        string
	Description string
}

// DepartmentService defines admin operations on departments.
type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, actorEmail string, input DepartmentInput) (*domain.Department, error)
	Update(ctx context.Context, actorEmail, id string, input DepartmentInput) (*domain.Department, error)
	Delete(ctx context.Context, actorEmail, id string) error
}
