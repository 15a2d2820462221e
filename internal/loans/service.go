package loans

import (
	"context"
	"errors"
	"time"

	"github.com/loandesk/loandesk/internal/recordid"
)

// ErrInvalidID indicates the supplied identifier is not a well-formed record id.
var ErrInvalidID = errors.New("invalid loan ID format")

// Service exposes loan application operations.
type Service struct {
	repo Repository
}

// NewService builds a loan service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Stats aggregates per-applicant loan counts.
type Stats struct {
	Applied  int64 `json:"applied"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// Apply stores a new application. The caller supplies every field; the service
// only assigns the identifier, the Pending status, and the submission time.
func (s *Service) Apply(ctx context.Context, loan Loan) (Loan, error) {
	loan.ID = recordid.New()
	loan.Status = StatusPending
	loan.AppliedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, loan); err != nil {
		return Loan{}, err
	}
	return loan, nil
}

// ListAll returns every application, newest first.
func (s *Service) ListAll(ctx context.Context) ([]Loan, error) {
	return s.repo.List(ctx)
}

// ListByApplicant returns applications whose fullName exactly matches the given
// name, newest first. fullName is free text, so this is a best-effort join
// against user identity, not a foreign key.
func (s *Service) ListByApplicant(ctx context.Context, fullName string) ([]Loan, error) {
	return s.repo.ListByFullName(ctx, fullName)
}

// UpdateStatus sets the status of an existing application. The identifier is
// validated before any store access.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (Loan, error) {
	if !recordid.IsValid(id) {
		return Loan{}, ErrInvalidID
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// StatsFor computes per-applicant counts. The three counts are independent
// queries; they may observe different instants under concurrent writes.
func (s *Service) StatsFor(ctx context.Context, fullName string) (Stats, error) {
	applied, err := s.repo.CountByFullName(ctx, fullName)
	if err != nil {
		return Stats{}, err
	}
	approved, err := s.repo.CountByFullNameAndStatus(ctx, fullName, StatusApproved)
	if err != nil {
		return Stats{}, err
	}
	rejected, err := s.repo.CountByFullNameAndStatus(ctx, fullName, StatusRejected)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Applied: applied, Approved: approved, Rejected: rejected}, nil
}
