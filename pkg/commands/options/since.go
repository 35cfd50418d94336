package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/timeutil"
)

// SinceOptions limits output to a look-back window.
type SinceOptions struct {
	Since string
}

func AddSinceArgs(cmd *cobra.Command, o *SinceOptions) {
	cmd.Flags().StringVar(&o.Since, "since", "",
		`Only show the days inside a window, example: --since=3d or --since=1w2d.`)
}

// GetCutoff returns nil when no window was given.
func (o *SinceOptions) GetCutoff(now time.Time, loc *time.Location) (*time.Time, error) {
	if o.Since == "" {
		return nil, nil
	}
	d, err := timeutil.ParseWindow(o.Since)
	if err != nil {
		return nil, err
	}
	t := timeutil.Cutoff(now, d, loc)
	return &t, nil
}
