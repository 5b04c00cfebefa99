package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) rootCmd() *cobra.Command {
	cfg := *a.config

	root := &cobra.Command{
		Use:   "journal",
		Short: "Work journal - record what you did, learned and found interesting",
		Long: `journal writes and reads work journal entries straight from the database
the journal server uses. The database is taken from DATABASE_URL (or .env)
unless --dsn is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfg.DatabaseDSN, "dsn", cfg.DatabaseDSN, "database connection string (postgres:// URL or sqlite path)")
	root.PersistentFlags().BoolVar(&cfg.StrictEntryTypes, "strict", cfg.StrictEntryTypes, "reject entry types other than work, learning and interesting")

	root.AddCommand(a.addCmd(&cfg))
	root.AddCommand(a.listCmd(&cfg))
	root.AddCommand(a.weeksCmd(&cfg))
	root.AddCommand(a.importCmd(&cfg))
	root.AddCommand(a.migrateCmd(&cfg))

	return root
}
