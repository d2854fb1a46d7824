package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

func sampleDataset(t *testing.T) *domain.Dataset {
	t.Helper()
	// Untruncated so the round trip must preserve full nanosecond precision,
	// as services stamp records with time.Now().
	now := time.Now().UTC()
	return &domain.Dataset{
		Accounts: []domain.Account{{
			ID:           "acc-1",
			FirstName:    "Sam",
			LastName:     "Reyes",
			Email:        "sam@example.com",
			PasswordHash: "$2a$10$notarealhashbutpresent",
			Role:         domain.RoleUser,
			Verified:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}},
		Departments: []domain.Department{{ID: "dep-1", Name: "Engineering"}},
		Employees: []domain.Employee{{
			ID:           "emp-1",
			AccountEmail: "sam@example.com",
			DepartmentID: "dep-1",
			Position:     "Engineer",
			HiredAt:      now,
		}},
		Requests: []domain.Request{{
			ID:             "req-1",
			RequesterEmail: "sam@example.com",
			SubmittedAt:    now,
			Type:           "equipment",
			Items:          []domain.RequestItem{{Name: "Laptop", Quantity: 2}},
			Status:         domain.StatusApproved,
			ResolvedAt:     now,
			ResolvedBy:     "admin@example.com",
		}},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	ds := sampleDataset(t)

	data, err := Encode(ds)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(got.Accounts) != 1 || got.Accounts[0].PasswordHash != ds.Accounts[0].PasswordHash {
		t.Fatalf("password hash must survive the round trip: %+v", got.Accounts)
	}
	if !got.Accounts[0].CreatedAt.Equal(ds.Accounts[0].CreatedAt) {
		t.Fatalf("timestamps drifted: %v vs %v", got.Accounts[0].CreatedAt, ds.Accounts[0].CreatedAt)
	}
	if !got.Employees[0].HiredAt.Equal(ds.Employees[0].HiredAt) {
		t.Fatalf("hire date drifted: %v vs %v", got.Employees[0].HiredAt, ds.Employees[0].HiredAt)
	}
	if !got.Requests[0].SubmittedAt.Equal(ds.Requests[0].SubmittedAt) || !got.Requests[0].ResolvedAt.Equal(ds.Requests[0].ResolvedAt) {
		t.Fatalf("request timestamps drifted: %+v vs %+v", got.Requests[0], ds.Requests[0])
	}
	if len(got.Requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(got.Requests))
	}
	req := got.Requests[0]
	if req.Status != domain.StatusApproved || req.ResolvedBy != "admin@example.com" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if len(req.Items) != 1 || req.Items[0].Quantity != 2 {
		t.Fatalf("items did not survive: %+v", req.Items)
	}
}

func TestDecode_RejectsMalformedDocuments(t *testing.T) {
	cases := map[string]string{
		"not json":        `{{{`,
		"missing email":   `{"accounts":[{"id":"acc-1","password_hash":"h","role":"user"}]}`,
		"unknown role":    `{"accounts":[{"id":"acc-1","email":"a@example.com","password_hash":"h","role":"root"}]}`,
		"duplicate email": `{"accounts":[{"id":"a","email":"x@example.com","password_hash":"h","role":"user"},{"id":"b","email":"x@example.com","password_hash":"h","role":"user"}]}`,
		"unknown status":  `{"requests":[{"id":"req-1","requester_email":"a@example.com","status":"Lost"}]}`,
		"nameless dept":   `{"departments":[{"id":"dep-1"}]}`,
	}
	for name, doc := range cases {
		if _, err := Decode([]byte(doc)); err == nil {
			t.Errorf("%s: expected decode error", name)
		}
	}
}

func TestSeed(t *testing.T) {
	ds, err := Seed()
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if len(ds.Accounts) != 1 {
		t.Fatalf("expected one seed account, got %d", len(ds.Accounts))
	}
	admin := ds.Accounts[0]
	if admin.Email != SeedAdminEmail || admin.Role != domain.RoleAdmin || !admin.Verified {
		t.Fatalf("unexpected seed admin: %+v", admin)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(SeedAdminPassword)); err != nil {
		t.Fatalf("seed password does not verify: %v", err)
	}
	if len(ds.Departments) != 2 {
		t.Fatalf("expected two seed departments, got %d", len(ds.Departments))
	}
}

func TestLoadOrSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("empty blob seeds", func(t *testing.T) {
		ds, seeded, err := LoadOrSeed(ctx, NewMemoryBlob())
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if !seeded {
			t.Fatalf("expected seeded=true for empty blob")
		}
		if ds.Accounts[0].Email != SeedAdminEmail {
			t.Fatalf("unexpected dataset: %+v", ds.Accounts)
		}
	})

	t.Run("corrupt snapshot seeds", func(t *testing.T) {
		blob := NewMemoryBlob()
		if err := blob.Save(ctx, []byte(`{"accounts":[{"id":"acc-1"}]}`)); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		ds, seeded, err := LoadOrSeed(ctx, blob)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if !seeded {
			t.Fatalf("expected seeded=true for corrupt snapshot")
		}
		if ds.Accounts[0].Email != SeedAdminEmail {
			t.Fatalf("corrupt snapshot must be replaced by seed")
		}
	})

	t.Run("valid snapshot loads", func(t *testing.T) {
		blob := NewMemoryBlob()
		data, err := Encode(sampleDataset(t))
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		if err := blob.Save(ctx, data); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		ds, seeded, err := LoadOrSeed(ctx, blob)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if seeded {
			t.Fatalf("valid snapshot must not be reseeded")
		}
		if ds.Accounts[0].Email != "sam@example.com" {
			t.Fatalf("unexpected dataset: %+v", ds.Accounts)
		}
	})

	t.Run("backend failure propagates", func(t *testing.T) {
		wantErr := errors.New("backend down")
		_, _, err := LoadOrSeed(ctx, failingBlob{err: wantErr})
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected backend error, got %v", err)
		}
	})
}

type failingBlob struct {
	err error
}

func (b failingBlob) Load(context.Context) ([]byte, error) { return nil, b.err }
func (b failingBlob) Save(context.Context, []byte) error   { return b.err }
