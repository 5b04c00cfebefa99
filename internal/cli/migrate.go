package cli

import (
	"fmt"

	"github.com/lgastler/work-journal/internal/server/config"
	"github.com/lgastler/work-journal/internal/server/services"
	"github.com/spf13/cobra"
)

func (a *App) migrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// opening the store runs the migrations
			return a.withService(cmd.Context(), cfg, func(es *services.EntryService) error {
				fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
				return nil
			})
		},
	}
}
