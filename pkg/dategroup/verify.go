package dategroup

import (
	"fmt"
	"time"
)

// Verify checks that rows are a well formed grouped list: every group
// opened by its headers, no empty group, separators exactly between
// differing runs, newest first, and no key used twice. It does not need
// the items rows were built from.
func Verify(rows []Row) error {
	keys := make(map[string]int, len(rows))
	for i, r := range rows {
		k := r.Key()
		if j, dup := keys[k]; dup {
			return fmt.Errorf("row %d: key %q already used by row %d", i, k, j)
		}
		keys[k] = i
	}

	var (
		last    *Row // last content row
		sawDays = map[int64]bool{}
	)
	for i := 0; i < len(rows); i++ {
		r := rows[i]
		next := func() (Row, error) {
			if i+1 >= len(rows) {
				return Row{}, fmt.Errorf("row %d: %s is not followed by any item", i, r)
			}
			return rows[i+1], nil
		}
		switch r.Kind {
		case KindSeparator:
			if last == nil {
				return fmt.Errorf("row %d: separator before the first item", i)
			}
			n, err := next()
			if err != nil {
				return err
			}
			if r.DateBoundary != !r.Day.Equal(last.Day) {
				return fmt.Errorf("row %d: separator date boundary %t between %s and %s",
					i, r.DateBoundary, last.Day.Format(time.DateOnly), r.Day.Format(time.DateOnly))
			}
			want := KindSectionHeader
			if r.DateBoundary {
				want = KindDateHeader
			} else if r.Category == last.Category {
				return fmt.Errorf("row %d: separator between runs of the same category", i)
			}
			if n.Kind != want || !n.Day.Equal(r.Day) {
				return fmt.Errorf("row %d: separator followed by %s", i, n)
			}
		case KindDateHeader:
			if last != nil && (i == 0 || rows[i-1].Kind != KindSeparator) {
				return fmt.Errorf("row %d: date header without a separator", i)
			}
			if sawDays[r.DayStartMs()] {
				return fmt.Errorf("row %d: second date header for %s", i, r.Day.Format(time.DateOnly))
			}
			if last != nil && !r.Day.Before(last.Day) {
				return fmt.Errorf("row %d: day %s is not older than %s", i,
					r.Day.Format(time.DateOnly), last.Day.Format(time.DateOnly))
			}
			sawDays[r.DayStartMs()] = true
			n, err := next()
			if err != nil {
				return err
			}
			if n.Kind != KindSectionHeader || !n.Day.Equal(r.Day) {
				return fmt.Errorf("row %d: date header followed by %s", i, n)
			}
		case KindSectionHeader:
			if i == 0 || (rows[i-1].Kind != KindDateHeader && rows[i-1].Kind != KindSeparator) {
				return fmt.Errorf("row %d: section header not opened by a date header or separator", i)
			}
			n, err := next()
			if err != nil {
				return err
			}
			if n.Kind != KindContent || !n.Day.Equal(r.Day) || n.Category != r.Category {
				return fmt.Errorf("row %d: section header followed by %s", i, n)
			}
		case KindContent:
			if i == 0 {
				return fmt.Errorf("row 0: item without headers")
			}
			if p := rows[i-1]; p.Kind == KindContent {
				if !p.Day.Equal(r.Day) || p.Category != r.Category {
					return fmt.Errorf("row %d: run changes group without a separator", i)
				}
			}
			if !r.Item.Created.DayStart(r.Day.Location()).Equal(r.Day) {
				return fmt.Errorf("row %d: item %q filed under the wrong day", i, r.Item.ID)
			}
			if r.Category != r.Item.Category {
				return fmt.Errorf("row %d: item %q filed under the wrong category", i, r.Item.ID)
			}
			if last != nil && compareDated(dated{item: last.Item, day: last.Day}, dated{item: r.Item, day: r.Day}) >= 0 {
				return fmt.Errorf("row %d: item %q out of order after %q", i, r.Item.ID, last.Item.ID)
			}
			last = &rows[i]
		default:
			return fmt.Errorf("row %d: invalid kind %d", i, r.Kind)
		}
	}
	return nil
}
