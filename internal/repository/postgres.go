package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rockguard/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository stores contact enquiries in PostgreSQL
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Migrate creates the contact_messages table if it does not exist
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	sql := `
		CREATE TABLE IF NOT EXISTS contact_messages (
			id BIGSERIAL PRIMARY KEY,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL DEFAULT '',
			email VARCHAR(320) NOT NULL,
			company VARCHAR(255) NOT NULL DEFAULT '',
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS contact_messages_created_at_idx ON contact_messages (created_at);
	`
	if _, err := r.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("repository: failed to migrate contact_messages: %w", err)
	}
	return nil
}

// SaveContactMessage inserts msg and fills in its ID
func (r *PostgresRepository) SaveContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	sql := `
		INSERT INTO contact_messages (first_name, last_name, email, company, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, sql,
		msg.FirstName,
		msg.LastName,
		msg.Email,
		msg.Company,
		msg.Message,
		msg.CreatedAt,
	).Scan(&msg.ID)
	if err != nil {
		return fmt.Errorf("repository: failed to insert contact message: %w", err)
	}
	return nil
}

// ListContactMessages returns the enquiries received at or after since, oldest first
func (r *PostgresRepository) ListContactMessages(ctx context.Context, since time.Time) ([]models.ContactMessage, error) {
	sql := `
		SELECT id, first_name, last_name, email, company, message, created_at
		FROM contact_messages
		WHERE created_at >= $1
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, sql, since)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var msg models.ContactMessage
		err := rows.Scan(
			&msg.ID,
			&msg.FirstName,
			&msg.LastName,
			&msg.Email,
			&msg.Company,
			&msg.Message,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return messages, nil
}

// FindContactMessage returns the enquiry with the given id
func (r *PostgresRepository) FindContactMessage(ctx context.Context, id int64) (*models.ContactMessage, error) {
	sql := `
		SELECT id, first_name, last_name, email, company, message, created_at
		FROM contact_messages
		WHERE id = $1
	`

	var msg models.ContactMessage
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&msg.ID,
		&msg.FirstName,
		&msg.LastName,
		&msg.Email,
		&msg.Company,
		&msg.Message,
		&msg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to find contact message: %w", err)
	}

	return &msg, nil
}

// Close releases the pool
func (r *PostgresRepository) Close() error {
	r.db.Close()
	return nil
}
