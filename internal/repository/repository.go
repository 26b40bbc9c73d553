// Package repository persists contact enquiries. Dashboard state is never stored.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rockguard/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a contact message does not exist.
var ErrNotFound = errors.New("repository: contact message not found")

// ContactRepository is implemented by every storage backend.
type ContactRepository interface {
	SaveContactMessage(ctx context.Context, msg *models.ContactMessage) error
	ListContactMessages(ctx context.Context, since time.Time) ([]models.ContactMessage, error)
	FindContactMessage(ctx context.Context, id int64) (*models.ContactMessage, error)
	Close() error
}

// Open picks the backend from dsn: postgres:// and postgresql:// URLs use
// PostgreSQL, anything else is treated as a SQLite data source.
func Open(ctx context.Context, dsn string) (ContactRepository, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("repository: cannot connect to postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("repository: cannot reach postgres: %w", err)
		}
		repo := NewPostgresRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return repo, nil
	}
	return NewSQLiteRepository(ctx, dsn)
}
