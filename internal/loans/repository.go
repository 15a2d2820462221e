package loans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound indicates no loan matches the given identifier.
	ErrNotFound = errors.New("loan not found")

	// ErrMissingLoanType indicates the store rejected a loan without a loanType.
	ErrMissingLoanType = errors.New("loanType is required")
)

// Repository persists loan applications. Loans are stored as documents with a
// few fields promoted for filtering and ordering.
type Repository interface {
	Create(ctx context.Context, loan Loan) error
	List(ctx context.Context) ([]Loan, error)
	ListByFullName(ctx context.Context, fullName string) ([]Loan, error)
	UpdateStatus(ctx context.Context, id, status string) (Loan, error)
	CountByFullName(ctx context.Context, fullName string) (int64, error)
	CountByFullNameAndStatus(ctx context.Context, fullName, status string) (int64, error)
}

// PostgresRepository stores loans in PostgreSQL, with the full application kept
// as a JSONB document next to the promoted query columns.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed loan repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a loan application.
func (r *PostgresRepository) Create(ctx context.Context, loan Loan) error {
	doc, err := json.Marshal(loan)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO loans (id, loan_type, full_name, status, applied_at, document)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		loan.ID, loan.LoanType, loan.FullName, loan.Status, loan.AppliedAt.UTC(), doc)
	return err
}

// List returns every loan, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]Loan, error) {
	rows, err := r.db.Query(ctx, `SELECT document FROM loans ORDER BY applied_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLoans(rows)
}

// ListByFullName returns loans whose fullName exactly equals the given string,
// newest first.
func (r *PostgresRepository) ListByFullName(ctx context.Context, fullName string) ([]Loan, error) {
	rows, err := r.db.Query(ctx, `SELECT document FROM loans WHERE full_name = $1 ORDER BY applied_at DESC`, fullName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLoans(rows)
}

// UpdateStatus sets the status of an existing loan and returns the updated
// record. The document copy of the status is rewritten in the same statement.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) (Loan, error) {
	row := r.db.QueryRow(ctx, `UPDATE loans
        SET status = $1, document = jsonb_set(document, '{status}', to_jsonb($1::text))
        WHERE id = $2
        RETURNING document`, status, id)

	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Loan{}, ErrNotFound
		}
		return Loan{}, err
	}

	var loan Loan
	if err := json.Unmarshal(doc, &loan); err != nil {
		return Loan{}, fmt.Errorf("decode loan %s: %w", id, err)
	}
	return loan, nil
}

// CountByFullName counts loans whose fullName equals the given string.
func (r *PostgresRepository) CountByFullName(ctx context.Context, fullName string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM loans WHERE full_name = $1`, fullName).Scan(&n)
	return n, err
}

// CountByFullNameAndStatus counts loans matching both fullName and status.
func (r *PostgresRepository) CountByFullNameAndStatus(ctx context.Context, fullName, status string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM loans WHERE full_name = $1 AND status = $2`, fullName, status).Scan(&n)
	return n, err
}

func collectLoans(rows pgx.Rows) ([]Loan, error) {
	var loans []Loan
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var loan Loan
		if err := json.Unmarshal(doc, &loan); err != nil {
			return nil, fmt.Errorf("decode loan document: %w", err)
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}
