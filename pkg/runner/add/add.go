package add

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/daylist/pkg/dategroup"
	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/printers"
	"tableflip.dev/daylist/pkg/store"
)

type Add struct {
	Category glyph.Category
	Title    string
	At       *time.Time
	ShowID   bool
	Location *time.Location

	Persistence store.Persistence
	Out         io.Writer

	// Added is the stored item once Do succeeds.
	Added item.Item
}

// Do stores a new item and prints the day it was filed under.
func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	it := item.New(n.Category, n.Title)
	if n.At != nil {
		it.Created = item.Timestamp{Time: *n.At}
	}
	if err := n.Persistence.Store(ctx, *it); err != nil {
		return err
	}
	n.Added = *it

	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}
	pp.Rows(dategroup.Project(sameDay(n.Persistence.ListAll(ctx), *it, n.Location), n.Location))
	return nil
}

func sameDay(all []item.Item, it item.Item, loc *time.Location) []item.Item {
	day := make([]item.Item, 0, len(all))
	for _, other := range all {
		if it.Created.SameDay(other.Created.Time, loc) {
			day = append(day, other)
		}
	}
	return day
}
