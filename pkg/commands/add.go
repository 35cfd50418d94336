package commands

import (
	"context"
	"strings"
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/commands/options"
	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/runner/add"
	"tableflip.dev/daylist/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	lo := &options.LocationOptions{}

	long := strings.Builder{}
	long.WriteString(base.Wrap80("Add an item to the list. The first argument is the category, the rest is the title."))
	long.WriteString("\n\nCategories and aliases:\n")
	for _, c := range glyph.Categories() {
		g := c.Glyph()
		long.WriteString("  " + g.Symbol + " " + g.Noun + ": " + strings.Join(append([]string{g.Key}, g.Aliases...), ", ") + "\n")
	}

	cmd := &cobra.Command{
		Use:   "add <category> <title...>",
		Short: "Add an item",
		Long:  long.String(),
		Example: `
daylist add video cats being cats
daylist add pdf quarterly report --on=2020-2-28
daylist add song --at=2020-02-28T15:04:05Z
`,
		Args: func(cmd *cobra.Command, args []string) error {
			return ao.ParseArgs(args)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return options.CategoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			loc, err := lo.GetLocation()
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
			s := add.Add{
				Category:    ao.Category,
				Title:       ao.Title,
				At:          at,
				ShowID:      io.ShowID,
				Location:    loc,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	options.AddLocationArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}
