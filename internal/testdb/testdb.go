//go:build integration

// Package testdb starts a disposable PostgreSQL for integration tests and
// applies the real migrations to it.
package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"tyzox-be/internal/migration"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// tables in truncation order; CASCADE covers the rest.
var tables = []string{
	"order_items", "orders", "cart_items", "carts",
	"product_relations", "products", "categories", "users",
}

// New returns a migrated database that is torn down with the test.
func New(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("store_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.PingContext(ctx))

	dir, err := migration.FindDir()
	require.NoError(t, err)

	m, err := migration.New(db, dir, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Up())

	return db
}

// Truncate empties every application table and resets identities.
func Truncate(t *testing.T, db *sql.DB) {
	t.Helper()
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		require.NoError(t, err)
	}
}
