package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/spbar/pkg/runner/ui"
	"tableflip.dev/spbar/pkg/settings"
	"tableflip.dev/spbar/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui [document or directory]",
		Short: "open the live progress viewer",
		Example: `
spbar ui
spbar ui TODO.md
spbar ui ./notes
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			cfg, err := settings.Load()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg.HistoryPath)
			if err != nil {
				return err
			}
			i := ui.UI{Root: root, Bar: cfg.Bar, Persistence: p}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
