package options

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions picks the time an item is filed at.
type OnOptions struct {
	OnString string
	AtString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28" or --on="2/28". The time of day is kept from now.`)
	cmd.Flags().StringVar(&o.AtString, "at", "",
		`Specify an exact time, example: --at="2020-02-28T15:04:05Z".`)
}

// GetOn returns nil when neither flag was given. Dates are read in loc.
func (o *OnOptions) GetOn(now time.Time, loc *time.Location) (*time.Time, error) {
	if o.OnString != "" && o.AtString != "" {
		return nil, errors.New("--on and --at are exclusive")
	}
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)

	if o.AtString != "" {
		t, err := time.Parse(time.RFC3339, o.AtString)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
	if o.OnString == "" {
		return nil, nil
	}

	t, err := time.ParseInLocation(layoutISO, o.OnString, loc)
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, loc)
		if err != nil {
			return nil, err
		}
		t = t.AddDate(now.Year(), 0, 0)
	}
	t = time.Date(t.Year(), t.Month(), t.Day(), now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), loc)
	return &t, nil
}
