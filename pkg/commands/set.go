package commands

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/commands/options"
	"tableflip.dev/daylist/pkg/runner/set"
	"tableflip.dev/daylist/pkg/store"
)

func addSet(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	lo := &options.LocationOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Change an item's category, time or title",
		Example: `
daylist set 4bf1c5a8-3f1b-4c0e-9d4e-2a1d3b8f5e6a --category doc
daylist set 4bf1c5a8-3f1b-4c0e-9d4e-2a1d3b8f5e6a --on=2020-2-28 --title="renamed"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one id")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return idCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			loc, err := lo.GetLocation()
			if err != nil {
				return oo.HandleError(err)
			}
			cat, err := co.GetCategory()
			if err != nil {
				return oo.HandleError(err)
			}
			at, err := on.GetOn(time.Now(), loc)
			if err != nil {
				return oo.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			s := set.Set{
				ID:          args[0],
				Category:    cat,
				At:          at,
				ShowID:      io.ShowID,
				Location:    loc,
				Persistence: p,
			}
			if cmd.Flags().Changed("title") {
				s.Title = &title
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddCategoryArgs(cmd, co, "Move the item to this category.")
	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return options.CategoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	options.AddLocationArgs(cmd, lo)
	cmd.Flags().StringVar(&title, "title", "", "Replace the title.")

	topLevel.AddCommand(cmd)
}
