package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/lgastler/work-journal/internal/logging"
	"github.com/lgastler/work-journal/internal/server/config"
	"github.com/lgastler/work-journal/internal/server/repositories/repomanager"
	"github.com/lgastler/work-journal/internal/server/services"
)

// openFunc opens the store named by a DSN and migrates it.
type openFunc func(ctx context.Context, dsn string) (*sql.DB, repomanager.RepositoryManager, error)

type App struct {
	config *config.Config
	logger logging.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	open   openFunc
	now    func() time.Time
}

// NewApp returns a CLI app writing results to stdout and logs to stderr.
func NewApp(c *config.Config, stdin io.Reader, stdout, stderr io.Writer) (*App, error) {
	logger, err := logging.New(stderr, c.LogLevel, "text")
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		open:   repomanager.Open,
		now:    time.Now,
	}, nil
}

// Run executes the command line given in args (without the program name).
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	return root.ExecuteContext(ctx)
}

// withService opens the store, hands an entry service to fn and closes the
// store afterwards. Entries written from the command line skip the
// submission delay.
func (a *App) withService(ctx context.Context, c *config.Config, fn func(es *services.EntryService) error) error {
	db, rm, err := a.open(ctx, c.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	cfg := *c
	cfg.SubmitDelay = 0

	return fn(services.NewEntryService(db, rm, &cfg, a.logger))
}
