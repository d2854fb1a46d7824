package ports

import (
	"context"
	"time"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

// Request row actions surfaced to admin sessions on pending rows.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// RequestItemInput is a single item line in a submission.
type RequestItemInput struct {
	Name     string
	Quantity int
}

// SubmitRequestInput carries a new item request from the authenticated
// principal.
type SubmitRequestInput struct {
	RequesterEmail string
	Type           string
	Items          []RequestItemInput
}

// RequestRow is the projection of a request for list views. ItemsSummary is
// the display form ("2x Laptop, 1x Dock"). Actions carries the resolution
// operations available to the viewing session: approve/reject appear only on
// pending rows seen by admin sessions.
type RequestRow struct {
	ID             string
	RequesterEmail string
	SubmittedAt    time.Time
	Type           string
	Items          []domain.RequestItem
	ItemsSummary   string
	Status         domain.RequestStatus
	Actions        []string
}

// RequestService defines request submission and resolution.
type RequestService interface {
	Submit(ctx context.Context, input SubmitRequestInput) (*domain.Request, error)
	// ListByRequester returns the principal's own requests, newest first.
	ListByRequester(ctx context.Context, email string) ([]RequestRow, error)
	// ListAll returns every request with actions gated by the viewer's role.
	ListAll(ctx context.Context, viewerRole string) ([]RequestRow, error)
	// Resolve transitions a pending request to Approved or Rejected. A second
	// resolution attempt fails with ErrAlreadyResolved.
	Resolve(ctx context.Context, actorEmail, id string, status domain.RequestStatus) (*domain.Request, error)
}
