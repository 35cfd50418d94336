package options

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Verbose bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug detail to stderr.")
}

// Logger builds a text logger writing to w, at debug level when verbose.
func (o *LogOptions) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
