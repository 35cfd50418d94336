package options

import (
	"time"

	"github.com/spf13/cobra"
)

// LocationOptions picks the zone days are cut in.
type LocationOptions struct {
	TZ string
}

func AddLocationArgs(cmd *cobra.Command, o *LocationOptions) {
	cmd.Flags().StringVar(&o.TZ, "tz", "",
		`Time zone used to group by day, example: --tz="America/New_York". Defaults to local time.`)
}

func (o *LocationOptions) GetLocation() (*time.Location, error) {
	if o.TZ == "" {
		return time.Local, nil
	}
	return time.LoadLocation(o.TZ)
}
