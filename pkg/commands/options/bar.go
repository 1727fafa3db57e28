package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/spbar/pkg/bar"
)

// BarOptions
type BarOptions struct {
	Width int
}

func AddBarArgs(cmd *cobra.Command, o *BarOptions) {
	cmd.Flags().IntVar(&o.Width, "width", 0,
		"Bar width in cells, 0 uses the configured width.")
}

// Apply overlays the flag values on a configured bar.
func (o *BarOptions) Apply(cfg bar.Config) bar.Config {
	if o.Width > 0 {
		cfg.Width = o.Width
	}
	return cfg
}
