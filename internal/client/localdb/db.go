// Package localdb opens the client's SQLite database and applies the embedded
// goose migrations. The database replaces the browser local storage of the
// web client: it survives restarts and is read before anything else runs.
package localdb

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophgallery/internal/client/migrations"
	"github.com/dmitrijs2005/gophgallery/internal/filex"
	"github.com/dmitrijs2005/gophgallery/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// InMemory is a DSN for a private in-memory database. It is only usable
// because InitDatabase pins the pool to a single connection.
const InMemory = ":memory:"

// goose keeps its FS, dialect and logger in package globals.
var gooseMu sync.Mutex

// gooseLogger routes goose output through the project logger.
type gooseLogger struct {
	log logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Debug(context.Background(), fmt.Sprintf(format, v...))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	g.log.Error(context.Background(), msg)
	panic(msg)
}

// RunMigrations applies all pending migrations. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB, log logging.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the SQLite database at dsn and
// migrates it. SQLite serialises writers anyway, so the pool is limited to one
// connection; this also keeps ":memory:" databases consistent.
func InitDatabase(ctx context.Context, dsn string, log logging.Logger) (*sql.DB, error) {
	if log == nil {
		log = logging.Nop{}
	}

	if dsn != InMemory {
		abs, err := filex.EnsureParentDir(dsn)
		if err != nil {
			return nil, err
		}
		dsn = abs
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
