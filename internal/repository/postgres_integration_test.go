//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"rockguard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	// Start PostgreSQL container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	// Connect to database
	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func TestPostgresRepository_ContactMessages(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewPostgresRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Migrate(ctx))
	require.NoError(t, repo.Migrate(ctx), "migrate must be idempotent")

	base := time.Date(2025, 9, 29, 9, 30, 0, 0, time.UTC)
	messages := []*models.ContactMessage{
		{FirstName: "Asha", LastName: "Verma", Email: "asha@example.com", Company: "Jharia Collieries", Message: "Slope sensors for pit 4?", CreatedAt: base},
		{FirstName: "Ravi", Email: "ravi@example.com", Message: "Pricing for drone surveys", CreatedAt: base.Add(time.Hour)},
	}
	for _, msg := range messages {
		require.NoError(t, repo.SaveContactMessage(ctx, msg))
		assert.NotZero(t, msg.ID)
	}

	tests := []struct {
		name     string
		since    time.Time
		expected []string
	}{
		{name: "all", since: base.Add(-time.Minute), expected: []string{"Asha", "Ravi"}},
		{name: "after first", since: base.Add(time.Minute), expected: []string{"Ravi"}},
		{name: "none", since: base.Add(2 * time.Hour), expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListContactMessages(ctx, tt.since)
			require.NoError(t, err)
			names := []string{}
			for _, m := range got {
				names = append(names, m.FirstName)
			}
			assert.Equal(t, tt.expected, names)
		})
	}

	found, err := repo.FindContactMessage(ctx, messages[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Jharia Collieries", found.Company)
	assert.WithinDuration(t, base, found.CreatedAt, time.Millisecond)

	_, err = repo.FindContactMessage(ctx, 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}
