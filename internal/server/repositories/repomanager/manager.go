package repomanager

import (
	"context"
	"database/sql"

	"github.com/lgastler/work-journal/internal/dbx"
	"github.com/lgastler/work-journal/internal/server/repositories/entries"
)

// RepositoryManager vends repositories for one database backend and owns
// that backend's schema migrations.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Entries(db dbx.DBTX) entries.Repository
}
