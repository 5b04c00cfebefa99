package entries

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lgastler/work-journal/internal/dbx"
	"github.com/lgastler/work-journal/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx)
// opened with the pgx stdlib driver.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new entry under a freshly generated UUID and returns it.
func (r *PostgresRepository) Create(ctx context.Context, in models.NewEntry) (*models.Entry, error) {
	entry := &models.Entry{
		ID:   uuid.NewString(),
		Date: models.DateOnly(in.Date),
		Type: in.Type,
		Text: in.Text,
	}

	query := `
		INSERT INTO entries (id, date, type, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := r.db.QueryRowContext(ctx, query, entry.ID, entry.Date, entry.Type, entry.Text).Scan(&entry.ID); err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}

	return entry, nil
}

// GetAll returns every stored entry in storage order.
func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, date, type, text FROM entries`)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []models.Entry
	for rows.Next() {
		var item models.Entry
		if err := rows.Scan(&item.ID, &item.Date, &item.Type, &item.Text); err != nil {
			return nil, err
		}
		item.Date = models.DateOnly(item.Date)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
