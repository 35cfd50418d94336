package dategroup

import (
	"fmt"
	"time"

	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/listmodel"
)

// on returns hour:minute on 2018-01-<day> in UTC.
func on(day, hour, minute int) item.Timestamp {
	return item.Timestamp{Time: time.Date(2018, time.January, day, hour, minute, 0, 0, time.UTC)}
}

func dayOf(day int) time.Time {
	return time.Date(2018, time.January, day, 0, 0, 0, 0, time.UTC)
}

func rec(id string, ts item.Timestamp, cat glyph.Category) item.Item {
	return item.Item{ID: id, Created: ts, Category: cat, Title: "item " + id}
}

func describe(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.String()
	}
	return out
}

// fakeSource is a minimal in-memory Source.
type fakeSource struct {
	items     map[string]item.Item
	observers []Observer
}

func newFakeSource(items ...item.Item) *fakeSource {
	s := &fakeSource{items: map[string]item.Item{}}
	for _, it := range items {
		s.items[it.ID] = it
	}
	return s
}

func (s *fakeSource) Items() []item.Item {
	out := make([]item.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	return out
}

func (s *fakeSource) AddObserver(o Observer) {
	for _, existing := range s.observers {
		if existing == o {
			return
		}
	}
	s.observers = append(s.observers, o)
}

func (s *fakeSource) RemoveObserver(o Observer) {
	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *fakeSource) add(items ...item.Item) {
	for _, it := range items {
		s.items[it.ID] = it
	}
	for _, o := range s.observers {
		o.OnItemsAdded(items)
	}
}

func (s *fakeSource) remove(ids ...string) {
	removed := make([]item.Item, 0, len(ids))
	for _, id := range ids {
		it, ok := s.items[id]
		if !ok {
			panic(fmt.Sprintf("fakeSource: no item %q", id))
		}
		delete(s.items, id)
		removed = append(removed, it)
	}
	for _, o := range s.observers {
		o.OnItemsRemoved(removed)
	}
}

func (s *fakeSource) update(updated item.Item) {
	old := s.items[updated.ID]
	s.items[updated.ID] = updated
	for _, o := range s.observers {
		o.OnItemUpdated(old, updated)
	}
}

// mirror replays model notifications onto its own slice, so tests can check
// that the notifications alone are enough to follow the model.
type mirror struct {
	model *listmodel.Model[Row]
	rows  []Row
}

func newMirror(model *listmodel.Model[Row]) *mirror {
	m := &mirror{model: model, rows: model.Items()}
	model.AddObserver(m)
	return m
}

func (m *mirror) ItemsInserted(index, count int) {
	added := make([]Row, count)
	for i := range added {
		added[i] = m.model.Get(index + i)
	}
	rest := append([]Row(nil), m.rows[index:]...)
	m.rows = append(append(m.rows[:index], added...), rest...)
}

func (m *mirror) ItemsRemoved(index, count int) {
	m.rows = append(m.rows[:index], m.rows[index+count:]...)
}

func (m *mirror) ItemsChanged(index, count int) {
	for i := index; i < index+count; i++ {
		m.rows[i] = m.model.Get(i)
	}
}
