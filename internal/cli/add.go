package cli

import (
	"fmt"
	"strings"

	"github.com/lgastler/work-journal/internal/common"
	"github.com/lgastler/work-journal/internal/journal"
	"github.com/lgastler/work-journal/internal/server/config"
	"github.com/lgastler/work-journal/internal/server/models"
	"github.com/lgastler/work-journal/internal/server/services"
	"github.com/spf13/cobra"
)

func (a *App) addCmd(cfg *config.Config) *cobra.Command {
	var date, typ string

	cmd := &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add a journal entry",
		Example: `  journal add "Shipped feature X"
  journal add --type learning --date 2024-01-10 "Go 1.22 routing patterns"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = a.now().Format(common.DateFormat)
			}
			in := services.CreateEntryInput{Date: date, Type: typ, Text: strings.Join(args, " ")}

			return a.withService(cmd.Context(), cfg, func(es *services.EntryService) error {
				created, err := es.Create(cmd.Context(), in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s entry for %s (%s)\n",
					created.Type, journal.FormatDate(created.Date), created.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "entry date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&typ, "type", "t", string(models.EntryTypeWork), "entry type: work, learning or interesting")

	return cmd
}
