package repository

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/rollnconnect/backend/internal/db"
)

// newTestDB opens an in-memory SQLite database and runs the real migrations
// against it. A single pooled connection keeps the in-memory database alive
// and serializes writers the way production SQLite does.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	database, err := sqlx.Connect("sqlite", dsn)
	require.NoError(t, err)
	database.SetMaxOpenConns(1)

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	t.Cleanup(func() { _ = database.Close() })

	return database
}

// newPooledTestDB opens a file-backed database with the production connection
// shape: a multi-connection pool, WAL, a busy timeout, and immediate write
// transactions. Concurrency tests run here so that writer contention between
// pool connections is actually exercised, not serialized away.
func newPooledTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pooled.db")
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_txlock=immediate", path)

	database, err := sqlx.Connect("sqlite", dsn)
	require.NoError(t, err)
	database.SetMaxOpenConns(25)

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	t.Cleanup(func() { _ = database.Close() })

	return database
}
