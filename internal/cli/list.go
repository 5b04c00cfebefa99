package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgastler/work-journal/internal/journal"
	"github.com/lgastler/work-journal/internal/server/config"
	"github.com/lgastler/work-journal/internal/server/services"
	"github.com/spf13/cobra"
)

func (a *App) listCmd(cfg *config.Config) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every entry in storage order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), cfg, func(es *services.EntryService) error {
				all, err := es.Entries(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(all)
				}
				printEntries(cmd.OutOrStdout(), all)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print entries as JSON")

	return cmd
}

func (a *App) weeksCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "weeks",
		Short: "Print entries grouped by week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), cfg, func(es *services.EntryService) error {
				weeks, err := es.Weeks(cmd.Context())
				if err != nil {
					return err
				}
				printWeeks(cmd.OutOrStdout(), weeks)
				return nil
			})
		},
	}
}

func printEntries(w io.Writer, entries []journal.EntryView) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %-11s  %s\n", e.Date, e.Type, e.Text)
	}
}

// printWeeks prints weeks the way the journal page lays them out; empty
// sections are left out.
func printWeeks(w io.Writer, weeks []journal.Week) {
	if len(weeks) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	for i, wk := range weeks {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, wk.Label())
		printSection(w, "Work:", wk.Work)
		printSection(w, "Learnings:", wk.Learning)
		printSection(w, "Interesting things:", wk.Interesting)
	}
}

func printSection(w io.Writer, title string, entries []journal.EntryView) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", title)
	for _, e := range entries {
		fmt.Fprintf(w, "    - %s\n", e.Text)
	}
}
