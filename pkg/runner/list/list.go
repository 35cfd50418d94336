package list

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"tableflip.dev/daylist/pkg/dategroup"
	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/printers"
	"tableflip.dev/daylist/pkg/store"
)

type List struct {
	ShowID bool
	JSON   bool
	// Category limits the list to one category. Unknown lists everything.
	Category glyph.Category
	// Since drops items created before it, when set.
	Since    *time.Time
	Location *time.Location

	Persistence store.Persistence
	Out         io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}

	rows := dategroup.Project(n.filtered(n.Persistence.ListAll(ctx)), n.Location)

	if n.JSON {
		out := n.Out
		if out == nil {
			out = os.Stdout
		}
		return printers.JSON(out, rows)
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}
	pp.Rows(rows)
	return nil
}

func (n *List) filtered(all []item.Item) []item.Item {
	if !n.Category.Valid() && n.Since == nil {
		return all
	}
	c := make([]item.Item, 0, len(all))
	for _, a := range all {
		if n.Category.Valid() && a.Category != n.Category {
			continue
		}
		if n.Since != nil && a.Created.Before(*n.Since) {
			continue
		}
		c = append(c, a)
	}
	return c
}
