//go:build testutil

// Package testdb starts a throwaway PostgreSQL container with the application schema
// applied. Tests using it are built with -tags testutil.
package testdb

import (
	"context"
	"fmt"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/yigit/feedbackd/internal/app/migrations"
	"github.com/yigit/feedbackd/internal/config"
	"github.com/yigit/feedbackd/internal/db"
)

// DBHandle owns the container and the pool connected to it
type DBHandle struct {
	DB     *db.PostgresDB
	cancel func()
	stop   func(context.Context) error
}

// Close closes the pool and terminates the container
func (h *DBHandle) Close() {
	if h.DB != nil {
		h.DB.Close()
	}
	if h.stop != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = h.stop(ctx)
	}
	if h.cancel != nil {
		h.cancel()
	}
}

// Start runs postgres, connects a pool and applies the embedded schema
func Start(ctx context.Context) (*DBHandle, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)

	pg, err := postgres.RunContainer(ctx,
		tc.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("feedback"),
		postgres.WithUsername("feedback"),
		postgres.WithPassword("feedback"),
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	fail := func(err error) (*DBHandle, error) {
		_ = pg.Terminate(context.Background())
		cancel()
		return nil, err
	}

	uri, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return fail(err)
	}

	database, err := db.NewPostgresDB(ctx, config.DatabaseConfig{MaxOpenConns: 4, ConnMaxLifetime: "5m"}, uri)
	if err != nil {
		return fail(err)
	}

	if err := migrations.NewMigrator(database.Pool).Up(ctx); err != nil {
		database.Close()
		return fail(err)
	}

	return &DBHandle{
		DB:     database,
		cancel: cancel,
		stop:   pg.Terminate,
	}, nil
}

// Truncate empties every application table between tests
func (h *DBHandle) Truncate(ctx context.Context) error {
	_, err := h.DB.Pool.Exec(ctx, `TRUNCATE feedback, teachers, faculty, students RESTART IDENTITY`)
	return err
}
