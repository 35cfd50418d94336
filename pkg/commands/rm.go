package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/runner/remove"
	"tableflip.dev/daylist/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id...>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove items",
		Example: `
daylist rm 4bf1c5a8-3f1b-4c0e-9d4e-2a1d3b8f5e6a
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires at least one id")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return idCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			s := remove.Remove{
				IDs:         args,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
