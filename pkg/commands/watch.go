package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/commands/options"
	"tableflip.dev/daylist/pkg/runner/watch"
	"tableflip.dev/daylist/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	i := &options.InteractiveOptions{}
	ido := &options.IDOptions{}
	lo := &options.LocationOptions{}

	cmd := &cobra.Command{
		Use:     "watch",
		Aliases: []string{"ui"},
		Short:   "Follow the list as it changes",
		Example: `
daylist watch
daylist watch --interactive=false | tee list.log
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			loc, err := lo.GetLocation()
			if err != nil {
				return oo.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			w := watch.Watch{
				Interactive: i.Interactive,
				ShowID:      ido.ShowID,
				Location:    loc,
				Logger:      slog.Default(),
				Persistence: p,
			}
			if w.Interactive {
				// stderr belongs to the full screen view.
				w.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
				w.Dark = termenv.HasDarkBackground()
			}
			return oo.HandleError(w.Do(ctx))
		},
	}

	options.InteractiveArgs(cmd, i)
	options.AddShowIDArgs(cmd, ido)
	options.AddLocationArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}
