package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"rockguard/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteRepository stores contact enquiries in a local SQLite file
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at dsn and creates the schema
func NewSQLiteRepository(ctx context.Context, dsn string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to open sqlite: %w", err)
	}
	// a single writer avoids SQLITE_BUSY on concurrent form posts
	db.SetMaxOpenConns(1)

	r := &SQLiteRepository{db: db}
	if err := r.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// Migrate creates the contact_messages table if it does not exist
func (r *SQLiteRepository) Migrate(ctx context.Context) error {
	stmts := []string{
		`PRAGMA journal_mode=WAL`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL,
			company TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS contact_messages_created_at_idx ON contact_messages (created_at)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("repository: failed to migrate sqlite: %w", err)
		}
	}
	return nil
}

// SaveContactMessage inserts msg and fills in its ID
func (r *SQLiteRepository) SaveContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO contact_messages (first_name, last_name, email, company, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		msg.FirstName, msg.LastName, msg.Email, msg.Company, msg.Message, msg.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert contact message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("repository: failed to read inserted id: %w", err)
	}
	msg.ID = id
	return nil
}

// ListContactMessages returns the enquiries received at or after since, oldest first
func (r *SQLiteRepository) ListContactMessages(ctx context.Context, since time.Time) ([]models.ContactMessage, error) {
	lower := int64(math.MinInt64)
	if !since.IsZero() {
		lower = since.UnixNano()
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email, company, message, created_at
		FROM contact_messages
		WHERE created_at >= ?
		ORDER BY created_at, id`, lower)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		msg, err := scanSQLite(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return messages, nil
}

// FindContactMessage returns the enquiry with the given id
func (r *SQLiteRepository) FindContactMessage(ctx context.Context, id int64) (*models.ContactMessage, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, company, message, created_at
		FROM contact_messages
		WHERE id = ?`, id)
	msg, err := scanSQLite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return msg, err
}

// Close closes the database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSQLite(s scanner) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	var created int64
	err := s.Scan(&msg.ID, &msg.FirstName, &msg.LastName, &msg.Email, &msg.Company, &msg.Message, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("repository: failed to scan contact message: %w", err)
	}
	msg.CreatedAt = time.Unix(0, created).UTC()
	return &msg, nil
}
