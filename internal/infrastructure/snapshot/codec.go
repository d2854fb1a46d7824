package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

// Persistence mirror types. These own the on-disk JSON contract (including
// the password hash, which the domain type never serializes) so the wire
// layout stays decoupled from API representations.

type snapshotAccount struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
	Verified     bool   `json:"verified"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

type snapshotDepartment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type snapshotEmployee struct {
	ID           string `json:"id"`
	AccountEmail string `json:"account_email"`
	DepartmentID string `json:"department_id"`
	Position     string `json:"position"`
	HiredAt      int64  `json:"hired_at"`
}

type snapshotItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type snapshotRequest struct {
	ID             string         `json:"id"`
	RequesterEmail string         `json:"requester_email"`
	SubmittedAt    int64          `json:"submitted_at"`
	Type           string         `json:"type"`
	Items          []snapshotItem `json:"items"`
	Status         string         `json:"status"`
	ResolvedAt     int64          `json:"resolved_at,omitempty"`
	ResolvedBy     string         `json:"resolved_by,omitempty"`
}

type snapshotDataset struct {
	Accounts    []snapshotAccount    `json:"accounts"`
	Departments []snapshotDepartment `json:"departments"`
	Employees   []snapshotEmployee   `json:"employees"`
	Requests    []snapshotRequest    `json:"requests"`
}

// Encode serializes the full dataset into the snapshot document.
func Encode(ds *domain.Dataset) ([]byte, error) {
	doc := snapshotDataset{
		Accounts:    make([]snapshotAccount, 0, len(ds.Accounts)),
		Departments: make([]snapshotDepartment, 0, len(ds.Departments)),
		Employees:   make([]snapshotEmployee, 0, len(ds.Employees)),
		Requests:    make([]snapshotRequest, 0, len(ds.Requests)),
	}
	for _, a := range ds.Accounts {
		doc.Accounts = append(doc.Accounts, snapshotAccount{
			ID:           a.ID,
			FirstName:    a.FirstName,
			LastName:     a.LastName,
			Email:        a.Email,
			PasswordHash: a.PasswordHash,
			Role:         a.Role,
			Verified:     a.Verified,
			CreatedAt:    a.CreatedAt.UnixNano(),
			UpdatedAt:    a.UpdatedAt.UnixNano(),
		})
	}
	for _, d := range ds.Departments {
		doc.Departments = append(doc.Departments, snapshotDepartment(d))
	}
	for _, e := range ds.Employees {
		doc.Employees = append(doc.Employees, snapshotEmployee{
			ID:           e.ID,
			AccountEmail: e.AccountEmail,
			DepartmentID: e.DepartmentID,
			Position:     e.Position,
			HiredAt:      e.HiredAt.UnixNano(),
		})
	}
	for _, r := range ds.Requests {
		items := make([]snapshotItem, 0, len(r.Items))
		for _, it := range r.Items {
			items = append(items, snapshotItem(it))
		}
		sr := snapshotRequest{
			ID:             r.ID,
			RequesterEmail: r.RequesterEmail,
			SubmittedAt:    r.SubmittedAt.UnixNano(),
			Type:           r.Type,
			Items:          items,
			Status:         string(r.Status),
			ResolvedBy:     r.ResolvedBy,
		}
		if !r.ResolvedAt.IsZero() {
			sr.ResolvedAt = r.ResolvedAt.UnixNano()
		}
		doc.Requests = append(doc.Requests, sr)
	}
	return json.Marshal(doc)
}

// Decode parses and schema-checks a snapshot document. Parsed records are
// typed and validated rather than trusted: any structural violation fails
// the whole decode so the caller can fall back to the seed dataset.
func Decode(data []byte) (*domain.Dataset, error) {
	var doc snapshotDataset
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}

	ds := &domain.Dataset{
		Accounts:    make([]domain.Account, 0, len(doc.Accounts)),
		Departments: make([]domain.Department, 0, len(doc.Departments)),
		Employees:   make([]domain.Employee, 0, len(doc.Employees)),
		Requests:    make([]domain.Request, 0, len(doc.Requests)),
	}

	seenEmails := make(map[string]struct{}, len(doc.Accounts))
	for _, a := range doc.Accounts {
		if a.ID == "" || a.Email == "" || a.PasswordHash == "" {
			return nil, fmt.Errorf("snapshot decode: account missing required fields")
		}
		if a.Role != domain.RoleAdmin && a.Role != domain.RoleUser {
			return nil, fmt.Errorf("snapshot decode: account %s has unknown role %q", a.Email, a.Role)
		}
		if _, dup := seenEmails[a.Email]; dup {
			return nil, fmt.Errorf("snapshot decode: duplicate account email %s", a.Email)
		}
		seenEmails[a.Email] = struct{}{}
		ds.Accounts = append(ds.Accounts, domain.Account{
			ID:           a.ID,
			FirstName:    a.FirstName,
			LastName:     a.LastName,
			Email:        a.Email,
			PasswordHash: a.PasswordHash,
			Role:         a.Role,
			Verified:     a.Verified,
			CreatedAt:    nanosToTime(a.CreatedAt),
			UpdatedAt:    nanosToTime(a.UpdatedAt),
		})
	}
	for _, d := range doc.Departments {
		if d.ID == "" || d.Name == "" {
			return nil, fmt.Errorf("snapshot decode: department missing required fields")
		}
		ds.Departments = append(ds.Departments, domain.Department(d))
	}
	for _, e := range doc.Employees {
		if e.ID == "" || e.AccountEmail == "" {
			return nil, fmt.Errorf("snapshot decode: employee missing required fields")
		}
		ds.Employees = append(ds.Employees, domain.Employee{
			ID:           e.ID,
			AccountEmail: e.AccountEmail,
			DepartmentID: e.DepartmentID,
			Position:     e.Position,
			HiredAt:      nanosToTime(e.HiredAt),
		})
	}
	for _, r := range doc.Requests {
		status := domain.RequestStatus(r.Status)
		switch status {
		case domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
		default:
			return nil, fmt.Errorf("snapshot decode: request %s has unknown status %q", r.ID, r.Status)
		}
		if r.ID == "" || r.RequesterEmail == "" {
			return nil, fmt.Errorf("snapshot decode: request missing required fields")
		}
		items := make([]domain.RequestItem, 0, len(r.Items))
		for _, it := range r.Items {
			items = append(items, domain.RequestItem(it))
		}
		ds.Requests = append(ds.Requests, domain.Request{
			ID:             r.ID,
			RequesterEmail: r.RequesterEmail,
			SubmittedAt:    nanosToTime(r.SubmittedAt),
			Type:           r.Type,
			Items:          items,
			Status:         status,
			ResolvedAt:     nanosToTime(r.ResolvedAt),
			ResolvedBy:     r.ResolvedBy,
		})
	}
	return ds, nil
}

// Seed defaults populated on first run or after a corrupted snapshot.
const (
	SeedAdminEmail    = "admin@example.com"
	SeedAdminPassword = "Password123!"
)

// Seed builds the default dataset: one verified admin account and two
// starter departments.
func Seed() (*domain.Dataset, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("snapshot seed: %w", err)
	}
	now := time.Now().UTC()
	return &domain.Dataset{
		Accounts: []domain.Account{{
			ID:           "acc-admin",
			FirstName:    "System",
			LastName:     "Admin",
			Email:        SeedAdminEmail,
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
			Verified:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}},
		Departments: []domain.Department{
			{ID: "dep-engineering", Name: "Engineering", Description: "Manages all engineering activities"},
			{ID: "dep-hr", Name: "Human Resources", Description: "Handles personnel and employee relations"},
		},
		Employees: []domain.Employee{},
		Requests:  []domain.Request{},
	}, nil
}

// LoadOrSeed reads the snapshot from the blob store. A missing or malformed
// snapshot yields the seed dataset (seeded=true); the corrupt document is
// discarded. Backend I/O failures are returned as-is so an outage never
// silently wipes data.
func LoadOrSeed(ctx context.Context, blob Blob) (ds *domain.Dataset, seeded bool, err error) {
	data, err := blob.Load(ctx)
	if err != nil {
		if err == ErrNotFound {
			ds, err = Seed()
			return ds, true, err
		}
		return nil, false, err
	}
	ds, err = Decode(data)
	if err != nil {
		ds, err = Seed()
		return ds, true, err
	}
	return ds, false, nil
}

// nanosToTime restores a stamp persisted with UnixNano. Timestamps round-trip
// losslessly so a reloaded dataset compares equal to the one saved.
func nanosToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(0, ts).UTC()
}
