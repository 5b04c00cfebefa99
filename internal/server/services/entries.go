// Package services holds the journal's application logic between the HTTP
// and CLI transports and the entry repositories.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lgastler/work-journal/internal/common"
	"github.com/lgastler/work-journal/internal/dbx"
	"github.com/lgastler/work-journal/internal/journal"
	"github.com/lgastler/work-journal/internal/logging"
	"github.com/lgastler/work-journal/internal/server/config"
	"github.com/lgastler/work-journal/internal/server/models"
	"github.com/lgastler/work-journal/internal/server/repositories/repomanager"
)

// CreateEntryInput is a submitted entry before any parsing.
type CreateEntryInput struct {
	Date string `json:"date"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// wait is a seam for testing the submission delay.
var wait = func(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	submitDelay time.Duration
	strictTypes bool
}

func NewEntryService(db *sql.DB, repomanager repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *EntryService {
	return &EntryService{
		db:          db,
		repomanager: repomanager,
		logger:      logger.With("module", "entry_service"),
		submitDelay: cfg.SubmitDelay,
		strictTypes: cfg.StrictEntryTypes,
	}
}

// Entries returns every stored entry with its date normalised to YYYY-MM-DD.
func (s *EntryService) Entries(ctx context.Context) ([]journal.EntryView, error) {
	all, err := s.repomanager.Entries(s.db).GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return journal.View(all), nil
}

// Weeks reads every entry and groups them by week. Nothing is cached; each
// call goes back to the store.
func (s *EntryService) Weeks(ctx context.Context) ([]journal.Week, error) {
	all, err := s.repomanager.Entries(s.db).GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return journal.GroupByWeek(all), nil
}

// Create parses and stores one submitted entry after the configured
// submission delay. The category is stored as given unless strict entry
// types are enabled.
func (s *EntryService) Create(ctx context.Context, in CreateEntryInput) (*models.Entry, error) {
	entry, err := s.parse(in)
	if err != nil {
		return nil, err
	}

	if err := wait(ctx, s.submitDelay); err != nil {
		return nil, err
	}

	created, err := s.repomanager.Entries(s.db).Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.logger.Info(ctx, "Entry created", "id", created.ID, "date", journal.FormatDate(created.Date), "type", created.Type)
	return created, nil
}

// Import stores all inputs in one transaction. Either every entry is
// written or none is.
func (s *EntryService) Import(ctx context.Context, inputs []CreateEntryInput) (int, error) {
	parsed := make([]models.NewEntry, 0, len(inputs))
	for i, in := range inputs {
		e, err := s.parse(in)
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
		parsed = append(parsed, e)
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Entries(tx)
		for _, e := range parsed {
			if _, err := repo.Create(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("import entries: %w", err)
	}

	s.logger.Info(ctx, "Entries imported", "count", len(parsed))
	return len(parsed), nil
}

// Ping reports whether the store is reachable.
func (s *EntryService) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *EntryService) parse(in CreateEntryInput) (models.NewEntry, error) {
	date, err := ParseDate(in.Date)
	if err != nil {
		return models.NewEntry{}, err
	}

	if s.strictTypes && !models.EntryType(in.Type).Valid() {
		return models.NewEntry{}, fmt.Errorf("%w: %q", common.ErrUnknownEntryType, in.Type)
	}

	return models.NewEntry{Date: date, Type: in.Type, Text: in.Text}, nil
}

// ParseDate accepts a YYYY-MM-DD calendar date or an RFC 3339 timestamp and
// returns the UTC calendar date it falls on.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(common.DateFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return models.DateOnly(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", common.ErrInvalidDate, s)
}
