// Package entries provides the journal entry store: a create-one and
// find-all repository with PostgreSQL and SQLite implementations.
package entries

import (
	"context"

	"github.com/lgastler/work-journal/internal/server/models"
)

// Repository persists journal entries. Identifiers are always assigned by
// the implementation; entries are never updated or deleted.
type Repository interface {
	Create(ctx context.Context, entry models.NewEntry) (*models.Entry, error)
	GetAll(ctx context.Context) ([]models.Entry, error)
}
