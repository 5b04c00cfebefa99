package repomanager

import (
	"context"
	"database/sql"

	"github.com/lgastler/work-journal/internal/dbx"
	"github.com/lgastler/work-journal/internal/server/migrations"
	"github.com/lgastler/work-journal/internal/server/repositories/entries"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Entries(db dbx.DBTX) entries.Repository {
	return entries.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, "sqlite3", migrations.SQLiteDir)
}

func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}
