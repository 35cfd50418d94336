package options

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// InteractiveOptions
type InteractiveOptions struct {
	Interactive bool
}

// InteractiveArgs defaults to interactive when stdout is a terminal.
func InteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", tty,
		`Use the full screen view. Defaults to true on a terminal.`)
}
