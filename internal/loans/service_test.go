package loans

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	before := time.Now().UTC()

	loan, err := svc.Apply(context.Background(), Loan{LoanType: "house", FullName: "alice", PropertyValue: "5000000"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if loan.Status != StatusPending {
		t.Fatalf("expected status %q, got %q", StatusPending, loan.Status)
	}
	if loan.AppliedAt.Before(before) {
		t.Fatalf("appliedAt %v earlier than submission at %v", loan.AppliedAt, before)
	}
	if loan.ID == "" {
		t.Fatal("expected an assigned id")
	}
}

func TestApplyWithoutLoanTypeRejected(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	if _, err := svc.Apply(context.Background(), Loan{FullName: "alice"}); !errors.Is(err, ErrMissingLoanType) {
		t.Fatalf("expected ErrMissingLoanType, got %v", err)
	}
}

func TestListAllNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, name := range []string{"first", "second", "third"} {
		loan := Loan{ID: name, LoanType: "personal", AppliedAt: base.Add(time.Duration(i) * time.Minute), Status: StatusPending}
		if err := repo.Create(ctx, loan); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	loans, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(loans) != 3 {
		t.Fatalf("expected 3 loans, got %d", len(loans))
	}
	for i := 1; i < len(loans); i++ {
		if loans[i].AppliedAt.After(loans[i-1].AppliedAt) {
			t.Fatalf("loans not in newest-first order: %v before %v", loans[i-1].AppliedAt, loans[i].AppliedAt)
		}
	}
	if loans[0].ID != "third" {
		t.Fatalf("expected newest loan first, got %s", loans[0].ID)
	}
}

func TestListByApplicantExactMatch(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	seed := []Loan{
		{ID: "1", LoanType: "car", FullName: "Alice", AppliedAt: time.Now().UTC()},
		{ID: "2", LoanType: "car", FullName: "alice", AppliedAt: time.Now().UTC()},
		{ID: "3", LoanType: "car", FullName: "Alice", AppliedAt: time.Now().UTC().Add(time.Second)},
	}
	for _, l := range seed {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	mine, err := svc.ListByApplicant(ctx, "Alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 case-sensitive matches, got %d", len(mine))
	}

	none, err := svc.ListByApplicant(ctx, "Bob")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	loan, err := svc.Apply(ctx, Loan{LoanType: "jewel", FullName: "carol"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, loan.ID, StatusApproved)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != StatusApproved {
		t.Fatalf("expected %q, got %q", StatusApproved, updated.Status)
	}
	if updated.FullName != "carol" {
		t.Fatalf("unrelated field changed: %q", updated.FullName)
	}
}

func TestUpdateStatusMalformedID(t *testing.T) {
	svc := NewService(failingRepository{})

	// The malformed id must be rejected before any store access; failingRepository
	// panics if reached.
	if _, err := svc.UpdateStatus(context.Background(), "not-a-record-id", StatusApproved); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestUpdateStatusUnknownID(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, err := svc.UpdateStatus(context.Background(), "64f1c2d3a4b5c6d7e8f90a1b", StatusApproved)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatsFor(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	seed := []struct {
		name   string
		status string
	}{
		{"dave", StatusApproved},
		{"dave", StatusApproved},
		{"dave", StatusRejected},
		{"dave", StatusPending},
		{"erin", StatusApproved},
	}
	for i, s := range seed {
		loan := Loan{ID: string(rune('a' + i)), LoanType: "personal", FullName: s.name, Status: s.status, AppliedAt: time.Now().UTC()}
		if err := repo.Create(ctx, loan); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	stats, err := svc.StatsFor(ctx, "dave")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Applied != 4 || stats.Approved != 2 || stats.Rejected != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	empty, err := svc.StatsFor(ctx, "nobody")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if empty.Applied != 0 || empty.Approved != 0 || empty.Rejected != 0 {
		t.Fatalf("expected zero stats, got %+v", empty)
	}
}

// failingRepository panics on every call. It verifies code paths that must not
// reach the store.
type failingRepository struct{}

func (failingRepository) Create(context.Context, Loan) error { panic("store accessed") }
func (failingRepository) List(context.Context) ([]Loan, error) {
	panic("store accessed")
}
func (failingRepository) ListByFullName(context.Context, string) ([]Loan, error) {
	panic("store accessed")
}
func (failingRepository) UpdateStatus(context.Context, string, string) (Loan, error) {
	panic("store accessed")
}
func (failingRepository) CountByFullName(context.Context, string) (int64, error) {
	panic("store accessed")
}
func (failingRepository) CountByFullNameAndStatus(context.Context, string, string) (int64, error) {
	panic("store accessed")
}
