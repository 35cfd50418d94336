package commands

import (
	"log/slog"
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
	vo = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daylist",
		Short: base.Wrap80("A day by day list of everything you collected, grouped by kind."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(vo.Logger(os.Stderr))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddLogArgs(cmd, vo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addList(topLevel)
	addRemove(topLevel)
	addSet(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
