package contact

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrMissingField indicates the store rejected a submission with a blank
// required field.
var ErrMissingField = errors.New("all contact fields are required")

// Repository persists contact messages.
type Repository interface {
	Create(ctx context.Context, msg Message) error
}

// PostgresRepository stores contact messages in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed contact repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a contact message. The table's non-blank checks enforce the
// required fields.
func (r *PostgresRepository) Create(ctx context.Context, msg Message) error {
	_, err := r.db.Exec(ctx, `INSERT INTO contacts (id, name, email, phone, subject, message, sent_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		msg.ID, msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Body, msg.SentAt.UTC())
	return err
}
