// Package timeutil parses the look-back windows accepted by the CLI.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

type unit struct {
	label    string
	value    time.Duration
	spelling []string
}

// units is ordered largest first; FormatWindow relies on that.
var units = []unit{
	{"w", 7 * day, []string{"w", "wk", "wks", "week", "weeks"}},
	{"d", day, []string{"d", "day", "days"}},
	{"h", time.Hour, []string{"h", "hr", "hrs", "hour", "hours"}},
	{"m", time.Minute, []string{"m", "min", "mins", "minute", "minutes"}},
}

var segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)

func lookup(spelling string) (time.Duration, bool) {
	for _, u := range units {
		for _, s := range u.spelling {
			if s == spelling {
				return u.value, true
			}
		}
	}
	return 0, false
}

// ParseWindow reads a look-back such as "3d", "1w" or "1w2d6h".
func ParseWindow(input string) (time.Duration, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		return 0, fmt.Errorf("empty window")
	}

	var total time.Duration
	for len(rest) > 0 {
		m := segment.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("invalid window segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid window value %q: %w", m[1], err)
		}
		base, ok := lookup(m[2])
		if !ok {
			return 0, fmt.Errorf("unsupported window unit %q", m[2])
		}
		total += time.Duration(n) * base
		rest = strings.TrimSpace(rest[len(m[0]):])
	}
	if total <= 0 {
		return 0, fmt.Errorf("window must be greater than zero")
	}
	return total, nil
}

// FormatWindow is the compact spelling of d, such as "1w2d".
func FormatWindow(d time.Duration) string {
	var b strings.Builder
	for _, u := range units {
		if d < u.value {
			continue
		}
		fmt.Fprintf(&b, "%d%s", d/u.value, u.label)
		d %= u.value
	}
	if b.Len() == 0 {
		return "0m"
	}
	return b.String()
}

// Cutoff is the start of the day, in loc, that lies window before now. Every
// item on that day or later falls inside the window.
func Cutoff(now time.Time, window time.Duration, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t := now.Add(-window).In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
