package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffdesk/workforce-api/internal/api/metrics"
	"github.com/staffdesk/workforce-api/internal/core/domain"
	"github.com/staffdesk/workforce-api/internal/core/ports"
)

// RequestService implements item request submission and resolution.
type RequestService struct {
	requests ports.RequestRepository
	notifier ports.NotificationEnqueuer
	audit    ports.AuditRepository
	log      zerolog.Logger
}

func NewRequestService(requests ports.RequestRepository, notifier ports.NotificationEnqueuer, audit ports.AuditRepository, log zerolog.Logger) *RequestService {
	return &RequestService{requests: requests, notifier: notifier, audit: audit, log: log}
}

// Submit creates a pending request for the authenticated principal.
func (s *RequestService) Submit(ctx context.Context, input ports.SubmitRequestInput) (*domain.Request, error) {
	if input.RequesterEmail == "" || input.Type == "" || len(input.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]domain.RequestItem, 0, len(input.Items))
	for _, it := range input.Items {
		if it.Name == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, domain.RequestItem{Name: it.Name, Quantity: it.Quantity})
	}

	req := &domain.Request{
		ID:             newID("req"),
		RequesterEmail: input.RequesterEmail,
		SubmittedAt:    time.Now().UTC(),
		Type:           input.Type,
		Items:          items,
		Status:         domain.StatusPending,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	metrics.RequestsSubmittedTotal.WithLabelValues(req.Type).Inc()
	s.log.Info().Str("request_id", req.ID).Str("requester", req.RequesterEmail).Str("type", req.Type).Msg("request submitted")
	recordAudit(ctx, s.audit, s.log, input.RequesterEmail, "submit", "request", req.ID)
	return req, nil
}

// ListByRequester returns the principal's own requests, newest first. Own
// rows never carry resolution actions.
func (s *RequestService) ListByRequester(ctx context.Context, email string) ([]ports.RequestRow, error) {
	requests, err := s.requests.ListByRequester(ctx, email)
	if err != nil {
		return nil, err
	}
	return projectRequests(requests, ""), nil
}

// ListAll returns every request; approve/reject actions appear on pending
// rows only for admin viewers.
func (s *RequestService) ListAll(ctx context.Context, viewerRole string) ([]ports.RequestRow, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	return projectRequests(requests, viewerRole), nil
}

// Resolve transitions a pending request to Approved or Rejected, exactly
// once. Resolving an already resolved request fails with ErrAlreadyResolved.
func (s *RequestService) Resolve(ctx context.Context, actorEmail, id string, status domain.RequestStatus) (*domain.Request, error) {
	if status != domain.StatusApproved && status != domain.StatusRejected {
		return nil, domain.ErrInvalidStatus
	}
	req, err := s.requests.Resolve(ctx, id, status, actorEmail, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	metrics.RequestsResolvedTotal.WithLabelValues(string(status)).Inc()
	s.log.Info().Str("request_id", req.ID).Str("status", string(status)).Str("actor", actorEmail).Msg("request resolved")
	recordAudit(ctx, s.audit, s.log, actorEmail, "resolve", "request", req.ID)

	if s.notifier != nil {
		s.notifier.Enqueue(ports.NotificationInput{
			Kind:      ports.NotifyRequestResolved,
			Email:     req.RequesterEmail,
			RequestID: req.ID,
			Status:    string(status),
		})
	}
	return req, nil
}

func projectRequests(requests []domain.Request, viewerRole string) []ports.RequestRow {
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].SubmittedAt.After(requests[j].SubmittedAt)
	})

	rows := make([]ports.RequestRow, 0, len(requests))
	for _, r := range requests {
		var actions []string
		if viewerRole == domain.RoleAdmin && r.Status == domain.StatusPending {
			actions = []string{ports.ActionApprove, ports.ActionReject}
		}
		rows = append(rows, ports.RequestRow{
			ID:             r.ID,
			RequesterEmail: r.RequesterEmail,
			SubmittedAt:    r.SubmittedAt,
			Type:           r.Type,
			Items:          r.Items,
			ItemsSummary:   summarizeItems(r.Items),
			Status:         r.Status,
			Actions:        actions,
		})
	}
	return rows
}

func summarizeItems(items []domain.RequestItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
	}
	return strings.Join(parts, ", ")
}
