package dategroup

import (
	"slices"
	"time"

	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/item"
)

type dated struct {
	item item.Item
	day  time.Time
}

// compareDated orders newest day first, then newest timestamp first, then
// by ascending id so equal timestamps still have a fixed order.
func compareDated(a, b dated) int {
	if c := b.day.Compare(a.day); c != 0 {
		return c
	}
	if c := b.item.Created.Compare(a.item.Created.Time); c != 0 {
		return c
	}
	switch {
	case a.item.ID < b.item.ID:
		return -1
	case a.item.ID > b.item.ID:
		return 1
	}
	return 0
}

func sortItems(items []item.Item, loc *time.Location) []dated {
	out := make([]dated, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if err := it.Validate(); err != nil {
			panic(&InvariantError{Op: "project", ID: it.ID, Err: err})
		}
		if _, dup := seen[it.ID]; dup {
			panic(&InvariantError{Op: "project", ID: it.ID, Err: ErrDuplicateItem})
		}
		seen[it.ID] = struct{}{}
		out[i] = dated{item: it, day: it.Created.DayStart(loc)}
	}
	slices.SortFunc(out, compareDated)
	return out
}

// Project computes the canonical projection of items: every item as a
// content row, newest first, with a date header opening each day, a section
// header opening each run of one category, and a separator between adjacent
// runs. Days are computed in loc, or time.Local when loc is nil.
//
// Items must be valid and have distinct ids; Project panics otherwise.
func Project(items []item.Item, loc *time.Location) []Row {
	if loc == nil {
		loc = time.Local
	}
	sorted := sortItems(items, loc)
	rows := make([]Row, 0, len(sorted)+len(sorted)/2+2)

	var (
		prevDay time.Time
		prevCat glyph.Category
		runs    map[glyph.Category]int
	)
	for i, d := range sorted {
		cat := d.item.Category
		switch {
		case i == 0 || !d.day.Equal(prevDay):
			if i > 0 {
				rows = append(rows, Separator(d.day, cat, true, 1))
			}
			runs = map[glyph.Category]int{cat: 1}
			rows = append(rows, DateHeader(d.day), SectionHeader(d.day, cat, 1))
		case cat != prevCat:
			runs[cat]++
			rows = append(rows,
				Separator(d.day, cat, false, runs[cat]),
				SectionHeader(d.day, cat, runs[cat]))
		}
		rows = append(rows, Content(d.day, d.item))
		prevDay, prevCat = d.day, cat
	}
	return rows
}
