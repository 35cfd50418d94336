package main

import (
	"time"

	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/source"
)

type step struct {
	name  string
	apply func(*source.Memory) error
}

func sample(id string, at time.Time, c glyph.Category, title string) item.Item {
	return item.Item{ID: id, Created: item.Timestamp{Time: at}, Category: c, Title: title}
}

// samples spreads a handful of items over the last three days.
func samples(now time.Time) []item.Item {
	today := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)
	before := today.AddDate(0, 0, -2)
	return []item.Item{
		sample("s1", today.Add(3*time.Hour), glyph.Video, "conference keynote"),
		sample("s2", today.Add(2*time.Hour), glyph.Video, "cooking tutorial"),
		sample("s3", today.Add(time.Hour), glyph.Document, "train tickets"),
		sample("s4", yesterday.Add(5*time.Hour), glyph.Audio, "morning podcast"),
		sample("s5", yesterday.Add(4*time.Hour), glyph.Image, "whiteboard photo"),
		sample("s6", yesterday, glyph.Image, "receipt scan"),
		sample("s7", before.Add(8*time.Hour), glyph.Page, "long read"),
	}
}

func script(now time.Time) []step {
	all := samples(now)
	return []step{
		{"load a batch", func(m *source.Memory) error { return m.Add(all[1:]...) }},
		{"a newer video lands on top of its section", func(m *source.Memory) error { return m.Add(all[0]) }},
		{"rename in place", func(m *source.Memory) error {
			it := all[3]
			it.Title = "evening podcast"
			return m.Update(it)
		}},
		{"a new category opens its own run", func(m *source.Memory) error {
			it := all[1]
			it.Category = glyph.Page
			return m.Update(it)
		}},
		{"removing the last item of a day drops the day", func(m *source.Memory) error { return m.Remove(all[6].ID) }},
		{"clear", func(m *source.Memory) error {
			var ids []string
			for _, it := range m.Items() {
				ids = append(ids, it.ID)
			}
			return m.Remove(ids...)
		}},
	}
}
