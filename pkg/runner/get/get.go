// Package get provides the one-shot progress report runner.
package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/spbar/pkg/app"
	"tableflip.dev/spbar/pkg/bar"
	"tableflip.dev/spbar/pkg/printers"
)

// Get prints every marker's section progress for a document.
type Get struct {
	Path         string
	ShowLine     bool
	ShowDocument bool
	Bar          bar.Config
}

func (n *Get) Do(ctx context.Context) error {
	if n.Path == "" {
		return errors.New("can not get, no document path")
	}

	text, err := app.ReadDocument(n.Path)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowLine: n.ShowLine}
	fmt.Println("")
	pp.Title(n.Path)

	pp.Sections(bar.New(n.Bar), app.Progress(text)...)

	if n.ShowDocument {
		pp.Document(app.DocumentProgress(text))
	}
	return nil
}
