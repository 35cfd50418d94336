package set

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

var ErrNothingToSet = errors.New("nothing to set, pass --category, --on, --at or --title")

// Set edits one stored item. Zero fields are left unchanged.
type Set struct {
	ID       string
	Category glyph.Category
	At       *time.Time
	Title    *string
	ShowID   bool
	Location *time.Location

	Persistence store.Persistence
	Out         io.Writer

	// Updated is the stored item once Do succeeds.
	Updated item.Item
}

func (n *Set) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set, no persistence")
	}
	if !n.Category.Valid() && n.At == nil && n.Title == nil {
		return ErrNothingToSet
	}

	it, err := n.Persistence.Get(ctx, n.ID)
	if err != nil {
		return err
	}
	if n.Category.Valid() {
		it.Category = n.Category
	}
	if n.At != nil {
		it.Created = item.Timestamp{Time: *n.At}
	}
	if n.Title != nil {
		it.Title = *n.Title
	}
	if err := n.Persistence.Store(ctx, it); err != nil {
		return err
	}
	n.Updated = it

	day := make([]item.Item, 0)
	for _, other := range n.Persistence.ListAll(ctx) {
		if it.Created.SameDay(other.Created.Time, n.Location) {
			day = append(day, other)
		}
	}
	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}
	pp.Rows(dategroup.Project(day, n.Location))
	return nil
}
