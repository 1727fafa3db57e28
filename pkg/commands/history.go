package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/spbar/pkg/commands/options"
	"tableflip.dev/spbar/pkg/runner/history"
	"tableflip.dev/spbar/pkg/settings"
	"tableflip.dev/spbar/pkg/store"
)

func addHistory(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	all := false
	path := ""

	cmd := &cobra.Command{
		Use:   "history [document]",
		Short: "list recorded progress snapshots",
		Example: `
spbar history TODO.md
spbar history --all
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if all {
				return nil
			}
			if len(args) < 1 {
				return errors.New("requires a markdown document path, or --all")
			}
			path = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.Load()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg.HistoryPath)
			if err != nil {
				return err
			}
			s := history.History{
				Path:        path,
				All:         all,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List history for every tracked document.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
