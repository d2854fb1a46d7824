package store

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

// RequestRepo is the request-collection view over the store. Requests are
// append-and-resolve only; there is no delete.
type RequestRepo struct {
	s *Store
}

// Requests returns the repository view over the requests collection.
func (s *Store) Requests() *RequestRepo {
	return &RequestRepo{s: s}
}

func cloneRequest(r *domain.Request) domain.Request {
	clone := *r
	clone.Items = make([]domain.RequestItem, len(r.Items))
	copy(clone.Items, r.Items)
	return clone
}

func (r *RequestRepo) FindByID(_ context.Context, id string) (*domain.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.data.Requests {
		if r.s.data.Requests[i].ID == id {
			clone := cloneRequest(&r.s.data.Requests[i])
			return &clone, nil
		}
	}
	return nil, domain.ErrRequestNotFound
}

func (r *RequestRepo) List(_ context.Context) ([]domain.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.Request, 0, len(r.s.data.Requests))
	for i := range r.s.data.Requests {
		out = append(out, cloneRequest(&r.s.data.Requests[i]))
	}
	return out, nil
}

func (r *RequestRepo) ListByRequester(_ context.Context, email string) ([]domain.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.Request
	for i := range r.s.data.Requests {
		if r.s.data.Requests[i].RequesterEmail == email {
			out = append(out, cloneRequest(&r.s.data.Requests[i]))
		}
	}
	return out, nil
}

func (r *RequestRepo) Create(ctx context.Context, req *domain.Request) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.Requests = append(r.s.data.Requests, cloneRequest(req))
	return r.s.persistLocked(ctx)
}

// Resolve checks the stored request's status and writes the transition under
// one write lock, so two racing resolutions cannot both succeed.
func (r *RequestRepo) Resolve(ctx context.Context, id string, status domain.RequestStatus, resolvedBy string, resolvedAt time.Time) (*domain.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.data.Requests {
		if r.s.data.Requests[i].ID != id {
			continue
		}
		if !r.s.data.Requests[i].Status.CanTransitionTo(status) {
			return nil, fmt.Errorf("resolve request %s: %w (status %s)", id, domain.ErrAlreadyResolved, r.s.data.Requests[i].Status)
		}
		r.s.data.Requests[i].Status = status
		r.s.data.Requests[i].ResolvedAt = resolvedAt
		r.s.data.Requests[i].ResolvedBy = resolvedBy
		if err := r.s.persistLocked(ctx); err != nil {
			return nil, err
		}
		clone := cloneRequest(&r.s.data.Requests[i])
		return &clone, nil
	}
	return nil, domain.ErrRequestNotFound
}
