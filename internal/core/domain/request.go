package domain

import (
	"errors"
	"time"
)

// RequestStatus represents the lifecycle state of an item request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

// validTransitions defines the allowed state machine transitions.
// Resolution is one-way: a request is resolved exactly once.
var validTransitions = map[RequestStatus][]RequestStatus{
	StatusPending: {StatusApproved, StatusRejected},
}

var ErrRequestNotFound = errors.New("request not found")
var ErrAlreadyResolved = errors.New("request already resolved")
var ErrInvalidStatus = errors.New("invalid request status")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RequestItem is a single requested item with its quantity.
type RequestItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Request is an employee's item request. Requests are never deleted;
// they transition Pending -> Approved|Rejected exactly once.
type Request struct {
	ID             string        `json:"id"`
	RequesterEmail string        `json:"requester_email"`
	SubmittedAt    time.Time     `json:"submitted_at"`
	Type           string        `json:"type"`
	Items          []RequestItem `json:"items"`
	Status         RequestStatus `json:"status"`
	ResolvedAt     time.Time     `json:"resolved_at,omitzero"`
	ResolvedBy     string        `json:"resolved_by,omitempty"`
}
