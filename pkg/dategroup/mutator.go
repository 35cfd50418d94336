// Package dategroup materializes a set of items into a day grouped list of
// rows and keeps that list current as the set changes.
//
// The list is held in a listmodel.Model so renderers can observe inserted,
// removed and changed index ranges. After every source callback the model
// equals Project over the live items, including row keys.
//
// Nothing in this package is safe for concurrent use. Source callbacks must
// arrive serially on the goroutine that owns the model.
package dategroup

import (
	"log/slog"
	"maps"
	"slices"
	"time"

	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/listmodel"
)

// Source is the record collection a Mutator follows.
type Source interface {
	// Items returns a snapshot of every live item.
	Items() []item.Item
	AddObserver(Observer)
	RemoveObserver(Observer)
}

// Observer receives source changes. Each callback is delivered after the
// source snapshot already reflects the change.
type Observer interface {
	OnItemsAdded(items []item.Item)
	OnItemsRemoved(items []item.Item)
	OnItemUpdated(old, updated item.Item)
}

// Option customises a Mutator.
type Option func(*Mutator)

// WithLocation sets the zone used to cut timestamps into days.
func WithLocation(loc *time.Location) Option {
	return func(m *Mutator) {
		if loc != nil {
			m.loc = loc
		}
	}
}

// WithLogger sets where ignored anomalies are reported.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mutator) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithStrict makes malformed source input panic instead of being logged and
// skipped, and verifies the model after every change.
func WithStrict(strict bool) Option {
	return func(m *Mutator) {
		m.strict = strict
	}
}

// Mutator keeps a row model equal to the projection of a Source.
type Mutator struct {
	src    Source
	model  *listmodel.Model[Row]
	loc    *time.Location
	logger *slog.Logger
	strict bool

	live map[string]item.Item
}

var _ Observer = (*Mutator)(nil)

// New materializes the current snapshot of src into model and subscribes to
// src for further changes.
func New(src Source, model *listmodel.Model[Row], opts ...Option) *Mutator {
	m := &Mutator{
		src:    src,
		model:  model,
		loc:    time.Local,
		logger: slog.Default(),
		live:   make(map[string]item.Item),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.admit("attach", src.Items())
	m.sync()
	src.AddObserver(m)
	return m
}

// Close stops following the source. The model keeps its current rows.
func (m *Mutator) Close() {
	m.src.RemoveObserver(m)
}

// Model returns the model the mutator writes to.
func (m *Mutator) Model() *listmodel.Model[Row] {
	return m.model
}

// Location returns the zone days are computed in.
func (m *Mutator) Location() *time.Location {
	return m.loc
}

// Len is the number of live items.
func (m *Mutator) Len() int {
	return len(m.live)
}

func (m *Mutator) OnItemsAdded(items []item.Item) {
	if m.admit("add", items) > 0 {
		m.sync()
	}
}

func (m *Mutator) OnItemsRemoved(items []item.Item) {
	removed := 0
	for _, it := range items {
		if _, ok := m.live[it.ID]; !ok {
			m.violation("remove", it.ID, ErrUnknownItem)
			continue
		}
		delete(m.live, it.ID)
		removed++
	}
	if removed > 0 {
		m.sync()
	}
}

// OnItemUpdated moves the row of old to where updated belongs. When day and
// category are unchanged the row is replaced in place if its position
// holds; otherwise the update is a removal followed by an insertion.
func (m *Mutator) OnItemUpdated(old, updated item.Item) {
	if old.ID != updated.ID {
		m.violation("update", old.ID, ErrIDMismatch)
		return
	}
	prev, ok := m.live[old.ID]
	if !ok {
		m.violation("update", old.ID, ErrUnknownItem)
		return
	}
	if err := updated.Validate(); err != nil {
		m.violation("update", updated.ID, err)
		return
	}
	if prev.Equal(updated) {
		return
	}

	sameGroup := prev.Category == updated.Category &&
		prev.Created.DayStart(m.loc).Equal(updated.Created.DayStart(m.loc))
	if !sameGroup {
		delete(m.live, prev.ID)
		m.sync()
	}
	m.live[updated.ID] = updated
	m.sync()
}

// admit validates items and adds the acceptable ones to the live set,
// returning how many were added.
func (m *Mutator) admit(op string, items []item.Item) int {
	added := 0
	for _, it := range items {
		if err := it.Validate(); err != nil {
			m.violation(op, it.ID, err)
			continue
		}
		if _, dup := m.live[it.ID]; dup {
			m.violation(op, it.ID, ErrDuplicateItem)
			continue
		}
		m.live[it.ID] = it
		added++
	}
	return added
}

func (m *Mutator) sync() {
	items := slices.Collect(maps.Values(m.live))
	converge(m.model, Project(items, m.loc))
	if m.strict {
		if err := Verify(m.model.Items()); err != nil {
			panic(&InvariantError{Op: "verify", Err: err})
		}
	}
}

func (m *Mutator) violation(op, id string, err error) {
	ie := &InvariantError{Op: op, ID: id, Err: err}
	if m.strict {
		panic(ie)
	}
	m.logger.Warn("dategroup: ignoring item", "op", op, "id", id, "error", err)
}
