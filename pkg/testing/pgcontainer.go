package testing

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PGContainer is a running postgres with the diagnostics schema applied,
// reachable via ConnString.
type PGContainer struct {
	Container  testcontainers.Container
	ConnString string
}

type PGConfig struct {
	Database string
	Username string
	Password string
}

// NewPGContainer starts a postgres container and applies every up migration
// from db/migrations as an init script. The caller owns termination.
func NewPGContainer(ctx context.Context, cfg PGConfig) (*PGContainer, error) {
	scripts, err := migrationScripts()
	if err != nil {
		return nil, err
	}

	container, err := postgres.Run(ctx,
		"postgres:17.5",
		postgres.WithDatabase(cfg.Database),
		postgres.WithUsername(cfg.Username),
		postgres.WithPassword(cfg.Password),
		postgres.WithInitScripts(scripts...),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &PGContainer{Container: container, ConnString: connStr}, nil
}

// NewPGContainerWithCleanup is NewPGContainer with test defaults and
// termination tied to the test lifetime.
func NewPGContainerWithCleanup(ctx context.Context, tb testing.TB) *PGContainer {
	tb.Helper()

	container, err := NewPGContainer(ctx, PGConfig{
		Database: "diagscope_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		tb.Fatalf("failed to create postgres container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container.Container); err != nil {
			tb.Logf("failed to terminate postgres container: %v", err)
		}
	})

	return container
}

// migrationScripts lists the repo's up migrations in apply order. The files
// keep their numbered names inside the container, so postgres runs them in
// the same order.
func migrationScripts() ([]string, error) {
	_, self, _, _ := runtime.Caller(0)
	migrationsDir := filepath.Join(filepath.Dir(self), "../..", "db", "migrations")

	scripts, err := filepath.Glob(filepath.Join(migrationsDir, "*.up.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations in %s: %w", migrationsDir, err)
	}
	if len(scripts) == 0 {
		return nil, fmt.Errorf("no up migrations found in %s", migrationsDir)
	}
	sort.Strings(scripts)
	return scripts, nil
}
