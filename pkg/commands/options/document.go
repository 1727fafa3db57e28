// Package options defines shared flag helpers for CLI commands.
package options

import (
	"errors"

	"github.com/spf13/cobra"
)

// DocumentOptions captures the markdown document selection for commands.
type DocumentOptions struct {
	Path         string
	ShowLine     bool
	ShowDocument bool
}

// SetPathArg takes the first positional argument as the document path.
func (o *DocumentOptions) SetPathArg(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errors.New("requires a markdown document path")
	}
	if len(args) > 1 {
		return errors.New("too many documents set, confused")
	}
	o.Path = args[0]
	return nil
}

// AddDocumentArgs wires the detail flags for document reports.
func AddDocumentArgs(cmd *cobra.Command, o *DocumentOptions) {
	cmd.Flags().BoolVar(&o.ShowLine, "lines", false,
		"Show the marker line number for each section.")
	cmd.Flags().BoolVar(&o.ShowDocument, "document", false,
		"Also show the whole-document checkbox count.")
}
