package entries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lgastler/work-journal/internal/common"
	"github.com/lgastler/work-journal/internal/dbx"
	"github.com/lgastler/work-journal/internal/server/models"
)

// SQLiteRepository implements Repository using a DBTX opened with
// modernc.org/sqlite. Dates are stored as YYYY-MM-DD text.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a new entry under a freshly generated UUID and returns it.
func (r *SQLiteRepository) Create(ctx context.Context, in models.NewEntry) (*models.Entry, error) {
	entry := &models.Entry{
		ID:   uuid.NewString(),
		Date: models.DateOnly(in.Date),
		Type: in.Type,
		Text: in.Text,
	}

	query := `INSERT INTO entries (id, date, type, text) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, entry.ID, entry.Date.Format(common.DateFormat), entry.Type, entry.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}

	return entry, nil
}

// GetAll returns every stored entry in rowid (insertion) order.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, date, type, text FROM entries`)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []models.Entry
	for rows.Next() {
		var (
			item models.Entry
			date string
		)
		if err := rows.Scan(&item.ID, &date, &item.Type, &item.Text); err != nil {
			return nil, err
		}
		item.Date, err = time.Parse(common.DateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("entry %s has malformed date %q: %w", item.ID, date, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
