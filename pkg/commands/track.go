package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/spbar/pkg/commands/options"
	"tableflip.dev/spbar/pkg/runner/track"
	"tableflip.dev/spbar/pkg/settings"
	"tableflip.dev/spbar/pkg/store"
)

func addTrack(topLevel *cobra.Command) {
	do := &options.DocumentOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "track <document>",
		Short: "record a progress snapshot for each section",
		Example: `
spbar track TODO.md
`,
		Args: do.SetPathArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.Load()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg.HistoryPath)
			if err != nil {
				return err
			}
			s := track.Track{
				Path:        do.Path,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
