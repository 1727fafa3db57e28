// Package history lists recorded progress snapshots.
package history

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/spbar/pkg/app"
	"tableflip.dev/spbar/pkg/printers"
	"tableflip.dev/spbar/pkg/store"
)

// History prints snapshots for one document, or for all of them.
type History struct {
	Path        string
	All         bool
	Persistence store.Persistence
}

func (n *History) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get history, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}
	pp := printers.PrettyPrint{}
	fmt.Println("")

	if !n.All {
		snaps, err := svc.History(ctx, n.Path)
		if err != nil {
			return err
		}
		pp.Title(n.Path)
		pp.History(snaps...)
		return nil
	}

	paths, err := svc.Paths(ctx)
	if err != nil {
		return err
	}
	for _, path := range paths {
		snaps, err := svc.History(ctx, path)
		if err != nil {
			return err
		}
		pp.PathHeading(path)
		pp.History(snaps...)
	}
	return nil
}
