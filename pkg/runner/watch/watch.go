package watch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"tableflip.dev/daylist/pkg/dategroup"
	"tableflip.dev/daylist/pkg/listmodel"
	"tableflip.dev/daylist/pkg/printers"
	"tableflip.dev/daylist/pkg/source"
	"tableflip.dev/daylist/pkg/store"
	teaui "tableflip.dev/daylist/pkg/tui/app"
	"tableflip.dev/daylist/pkg/tui/theme"
)

// Watch follows the store. Interactive runs the TUI; otherwise the list is
// printed again every time a change lands.
type Watch struct {
	Interactive bool
	Dark        bool
	ShowID      bool
	Location    *time.Location
	Logger      *slog.Logger

	Persistence store.Persistence
	Out         io.Writer
}

func (w *Watch) Do(ctx context.Context) error {
	if w.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}
	src, err := source.NewStore(ctx, w.Persistence)
	if err != nil {
		return err
	}
	if w.Interactive {
		return teaui.Run(ctx, src, teaui.Options{
			Theme:    theme.Default(w.Dark),
			Location: w.Location,
			Logger:   w.Logger,
			ShowID:   w.ShowID,
		})
	}
	return w.follow(ctx, src)
}

func (w *Watch) follow(ctx context.Context, src *source.Store) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}

	model := listmodel.New[dategroup.Row]()
	mut := dategroup.New(src, model,
		dategroup.WithLocation(w.Location),
		dategroup.WithLogger(logger))
	defer mut.Close()

	pp := printers.PrettyPrint{Out: w.Out, ShowID: w.ShowID}
	pp.Rows(model.Items())

	events, err := w.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			changes := src.Refresh(ctx)
			logger.Debug("watch: refreshed",
				"category", ev.Category.String(),
				"invalidated", ev.Type == store.EventInvalidated,
				"changes", changes.String())
			if changes.Empty() {
				continue
			}
			pp.NewLine()
			pp.Rows(model.Items())
		}
	}
}
