package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffdesk/workforce-api/internal/core/domain"
	"github.com/staffdesk/workforce-api/internal/core/ports"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// --- accounts ---

type stubAccountRepo struct {
	accounts map[string]*domain.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) List(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) error {
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return domain.ErrEmailTaken
		}
	}
	r.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (r *stubAccountRepo) Update(_ context.Context, account *domain.Account) error {
	if _, ok := r.accounts[account.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	r.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

// --- departments ---

type stubDepartmentRepo struct {
	departments map[string]*domain.Department
}

func newStubDepartmentRepo() *stubDepartmentRepo {
	return &stubDepartmentRepo{departments: make(map[string]*domain.Department)}
}

func (r *stubDepartmentRepo) FindByID(_ context.Context, id string) (*domain.Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return nil, domain.ErrDepartmentNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *stubDepartmentRepo) List(_ context.Context) ([]domain.Department, error) {
	out := make([]domain.Department, 0, len(r.departments))
	for _, d := range r.departments {
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDepartmentRepo) Create(_ context.Context, dept *domain.Department) error {
	clone := *dept
	r.departments[dept.ID] = &clone
	return nil
}

func (r *stubDepartmentRepo) Update(_ context.Context, dept *domain.Department) error {
	if _, ok := r.departments[dept.ID]; !ok {
		return domain.ErrDepartmentNotFound
	}
	clone := *dept
	r.departments[dept.ID] = &clone
	return nil
}

func (r *stubDepartmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.departments[id]; !ok {
		return domain.ErrDepartmentNotFound
	}
	delete(r.departments, id)
	return nil
}

// --- employees ---

type stubEmployeeRepo struct {
	employees map[string]*domain.Employee
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*domain.Employee)}
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	out := make([]domain.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmployeeRepo) Create(_ context.Context, emp *domain.Employee) error {
	clone := *emp
	r.employees[emp.ID] = &clone
	return nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, emp *domain.Employee) error {
	if _, ok := r.employees[emp.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	clone := *emp
	r.employees[emp.ID] = &clone
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

// --- requests ---

type stubRequestRepo struct {
	requests map[string]*domain.Request
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{requests: make(map[string]*domain.Request)}
}

func cloneStubRequest(r *domain.Request) *domain.Request {
	clone := *r
	clone.Items = append([]domain.RequestItem(nil), r.Items...)
	return &clone
}

func (r *stubRequestRepo) FindByID(_ context.Context, id string) (*domain.Request, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	return cloneStubRequest(req), nil
}

func (r *stubRequestRepo) List(_ context.Context) ([]domain.Request, error) {
	out := make([]domain.Request, 0, len(r.requests))
	for _, req := range r.requests {
		out = append(out, *cloneStubRequest(req))
	}
	return out, nil
}

func (r *stubRequestRepo) ListByRequester(_ context.Context, email string) ([]domain.Request, error) {
	out := make([]domain.Request, 0)
	for _, req := range r.requests {
		if req.RequesterEmail == email {
			out = append(out, *cloneStubRequest(req))
		}
	}
	return out, nil
}

func (r *stubRequestRepo) Create(_ context.Context, req *domain.Request) error {
	r.requests[req.ID] = cloneStubRequest(req)
	return nil
}

func (r *stubRequestRepo) Resolve(_ context.Context, id string, status domain.RequestStatus, resolvedBy string, resolvedAt time.Time) (*domain.Request, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	if !req.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("resolve request %s: %w (status %s)", id, domain.ErrAlreadyResolved, req.Status)
	}
	req.Status = status
	req.ResolvedAt = resolvedAt
	req.ResolvedBy = resolvedBy
	return cloneStubRequest(req), nil
}

// --- audit ---

type stubAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *stubAuditRepo) InsertEvent(_ context.Context, event *domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

// --- sessions / verification / notifications ---

type stubSessionStore struct {
	sessions map[string]string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string)}
}

func (s *stubSessionStore) Create(_ context.Context, sessionID, email string, _ time.Duration) error {
	s.sessions[sessionID] = email
	return nil
}

func (s *stubSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type stubVerificationStore struct {
	pending map[string]bool
}

func newStubVerificationStore() *stubVerificationStore {
	return &stubVerificationStore{pending: make(map[string]bool)}
}

func (s *stubVerificationStore) MarkPending(_ context.Context, email string) error {
	s.pending[email] = true
	return nil
}

func (s *stubVerificationStore) ClearPending(_ context.Context, email string) error {
	delete(s.pending, email)
	return nil
}

type stubEnqueuer struct {
	queued []ports.NotificationInput
}

func (s *stubEnqueuer) Enqueue(n ports.NotificationInput) {
	s.queued = append(s.queued, n)
}
