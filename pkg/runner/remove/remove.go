package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daylist/pkg/store"
)

type Remove struct {
	IDs []string

	Persistence store.Persistence
	Out         io.Writer
}

// Do deletes every id it can and reports the ones it could not.
func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	faint := color.New(color.Faint)

	var errs []error
	for _, id := range n.IDs {
		if err := n.Persistence.Delete(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			continue
		}
		_, _ = faint.Fprintf(out, "removed %s\n", id)
	}
	return errors.Join(errs...)
}
