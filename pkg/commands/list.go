package commands

import (
	"context"
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/commands/options"
	"tableflip.dev/daylist/pkg/runner/list"
	"tableflip.dev/daylist/pkg/store"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	co := &options.CategoryOptions{}
	lo := &options.LocationOptions{}
	so := &options.SinceOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List items by day, newest first",
		Example: `
daylist list
daylist list --category audio --show-id
daylist list --json --tz=America/New_York
daylist list --since=1w
`,
		ValidArgs: []string{},
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
			since, err := so.GetCutoff(time.Now(), loc)
			if err != nil {
				return oo.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			s := list.List{
				Since:       since,
				ShowID:      io.ShowID,
				JSON:        oo.JSON,
				Category:    cat,
				Location:    loc,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddCategoryArgs(cmd, co, "Only list items of this category.")
	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return options.CategoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddLocationArgs(cmd, lo)
	options.AddSinceArgs(cmd, so)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
