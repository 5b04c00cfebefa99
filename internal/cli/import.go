package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lgastler/work-journal/internal/server/config"
	"github.com/lgastler/work-journal/internal/server/services"
	"github.com/spf13/cobra"
)

func (a *App) importCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import entries from a JSON file",
		Long: `Import reads a JSON array of {"date", "type", "text"} objects and stores
them in one transaction: either every entry is written or none is.
Use - to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.readImport(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			return a.withService(cmd.Context(), cfg, func(es *services.EntryService) error {
				n, err := es.Import(cmd.Context(), inputs)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries\n", n)
				return nil
			})
		},
	}
}

func (a *App) readImport(stdin io.Reader, path string) ([]services.CreateEntryInput, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var inputs []services.CreateEntryInput
	if err := json.NewDecoder(r).Decode(&inputs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return inputs, nil
}
