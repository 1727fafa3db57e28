// Package track records progress history snapshots for a document.
package track

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/spbar/pkg/app"
	"tableflip.dev/spbar/pkg/printers"
	"tableflip.dev/spbar/pkg/store"
)

// Track records one snapshot per marker and reprints the history.
type Track struct {
	Path        string
	Persistence store.Persistence
}

func (n *Track) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not track, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}
	recorded, err := svc.Track(ctx, n.Path)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(n.Path)
	if len(recorded) == 0 {
		fmt.Println("no markers to track")
		return nil
	}

	all, err := svc.History(ctx, n.Path)
	if err != nil {
		return err
	}
	pp.History(all...)
	return nil
}
