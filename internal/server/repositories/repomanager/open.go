package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lgastler/work-journal/internal/common"
	"github.com/lgastler/work-journal/internal/filex"
)

// Backend names the driver and source a DSN resolves to.
type Backend struct {
	Driver string
	Source string
}

// ResolveDSN maps a connection descriptor onto a database/sql driver.
//
//	postgres://... or postgresql://...   -> pgx
//	sqlite://path, file:..., :memory:,
//	or a path ending in .db/.sqlite/.sqlite3 -> sqlite
func ResolveDSN(dsn string) (Backend, error) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return Backend{Driver: "pgx", Source: dsn}, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return Backend{Driver: "sqlite", Source: strings.TrimPrefix(dsn, "sqlite://")}, nil
	case dsn == ":memory:", strings.HasPrefix(dsn, "file:"):
		return Backend{Driver: "sqlite", Source: dsn}, nil
	}

	for _, ext := range []string{".db", ".sqlite", ".sqlite3"} {
		if strings.HasSuffix(dsn, ext) {
			return Backend{Driver: "sqlite", Source: dsn}, nil
		}
	}

	return Backend{}, fmt.Errorf("%w: %q", common.ErrUnsupportedDSN, dsn)
}

// Open connects to the database named by dsn, checks it is reachable and
// brings its schema up to date.
func Open(ctx context.Context, dsn string) (*sql.DB, RepositoryManager, error) {
	backend, err := ResolveDSN(dsn)
	if err != nil {
		return nil, nil, err
	}

	if backend.Driver == "sqlite" && backend.Source != ":memory:" && !strings.HasPrefix(backend.Source, "file:") {
		if _, err := filex.EnsureParentDir(backend.Source); err != nil {
			return nil, nil, fmt.Errorf("db dir error: %w", err)
		}
	}

	db, err := sql.Open(backend.Driver, backend.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	var m RepositoryManager
	if backend.Driver == "sqlite" {
		// a single connection keeps :memory: databases shared and serialises writers
		db.SetMaxOpenConns(1)
		m = NewSQLiteRepositoryManager()
	} else {
		m = NewPostgresRepositoryManager()
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	return db, m, nil
}
