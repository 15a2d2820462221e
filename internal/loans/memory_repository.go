package loans

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	loans map[string]Loan
}

// NewMemoryRepository builds an in-memory loan store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{loans: make(map[string]Loan)}
}

func (r *memoryRepository) Create(_ context.Context, loan Loan) error {
	if loan.LoanType == "" {
		return ErrMissingLoanType
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loans[loan.ID] = loan
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(Loan) bool { return true }), nil
}

func (r *memoryRepository) ListByFullName(_ context.Context, fullName string) ([]Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(l Loan) bool { return l.FullName == fullName }), nil
}

func (r *memoryRepository) UpdateStatus(_ context.Context, id, status string) (Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	loan, ok := r.loans[id]
	if !ok {
		return Loan{}, ErrNotFound
	}
	loan.Status = status
	r.loans[id] = loan
	return loan, nil
}

func (r *memoryRepository) CountByFullName(_ context.Context, fullName string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.collect(func(l Loan) bool { return l.FullName == fullName }))), nil
}

func (r *memoryRepository) CountByFullNameAndStatus(_ context.Context, fullName, status string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.collect(func(l Loan) bool { return l.FullName == fullName && l.Status == status }))), nil
}

// collect filters and sorts newest-first. Callers must hold the lock.
func (r *memoryRepository) collect(keep func(Loan) bool) []Loan {
	var out []Loan
	for _, loan := range r.loans {
		if keep(loan) {
			out = append(out, loan)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out
}
