package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/spbar/pkg/commands/options"
	"tableflip.dev/spbar/pkg/runner/get"
	"tableflip.dev/spbar/pkg/settings"
)

func addGet(topLevel *cobra.Command) {
	do := &options.DocumentOptions{}
	bo := &options.BarOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get <document>",
		Short: "print section progress for a document",
		Example: `
spbar get TODO.md
spbar get notes/plan.md --lines --document
`,
		Args: do.SetPathArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.Load()
			if err != nil {
				return err
			}
			s := get.Get{
				Path:         do.Path,
				ShowLine:     do.ShowLine,
				ShowDocument: do.ShowDocument,
				Bar:          bo.Apply(cfg.Bar),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDocumentArgs(cmd, do)
	options.AddBarArgs(cmd, bo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
