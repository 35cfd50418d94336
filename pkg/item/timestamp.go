package item

import (
	"encoding/json"
	"fmt"
	"time"
)

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

type Timestamp struct {
	time.Time
}

// At is shorthand for a Timestamp at epoch milliseconds ms.
func At(ms int64) Timestamp {
	return Timestamp{Time: time.UnixMilli(ms)}
}

func (t Timestamp) SameDay(then time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	a := t.In(loc)
	b := then.In(loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DayStart truncates t to midnight of its calendar day in loc.
func (t Timestamp) DayStart(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339Nano)
}
