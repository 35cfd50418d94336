package source

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"tableflip.dev/daylist/pkg/item"
	"tableflip.dev/daylist/pkg/store"
)

// Changes counts what a Refresh delivered.
type Changes struct {
	Added   int
	Removed int
	Updated int
}

func (c Changes) Empty() bool {
	return c == Changes{}
}

func (c Changes) String() string {
	return fmt.Sprintf("+%d -%d ~%d", c.Added, c.Removed, c.Updated)
}

// Store follows a store.Persistence. It keeps the snapshot it last read and
// turns the difference to the next read into observer callbacks.
type Store struct {
	observers
	p     store.Persistence
	items map[string]item.Item
}

// NewStore reads the initial snapshot from p.
func NewStore(ctx context.Context, p store.Persistence) (*Store, error) {
	if p == nil {
		return nil, errors.New("source: persistence unavailable")
	}
	s := &Store{p: p, items: make(map[string]item.Item)}
	for _, it := range p.ListAll(ctx) {
		s.items[it.ID] = it
	}
	return s, nil
}

func (s *Store) Items() []item.Item {
	return snapshot(s.items)
}

func (s *Store) Persistence() store.Persistence {
	return s.p
}

// Refresh rereads the store and notifies observers of removals, then
// additions, then each update, in id order.
func (s *Store) Refresh(ctx context.Context) Changes {
	next := make(map[string]item.Item)
	for _, it := range s.p.ListAll(ctx) {
		if it.Validate() != nil {
			continue
		}
		next[it.ID] = it
	}
	if ctx.Err() != nil {
		return Changes{}
	}

	var added, removed []item.Item
	type update struct{ old, updated item.Item }
	var updates []update
	for id, old := range s.items {
		it, ok := next[id]
		switch {
		case !ok:
			removed = append(removed, old)
		case !it.Equal(old):
			updates = append(updates, update{old: old, updated: it})
		}
	}
	for id, it := range next {
		if _, ok := s.items[id]; !ok {
			added = append(added, it)
		}
	}
	sortByID(added)
	sortByID(removed)
	slices.SortFunc(updates, func(a, b update) int {
		return strings.Compare(a.old.ID, b.old.ID)
	})

	s.items = next
	s.removed(removed)
	s.added(added)
	for _, u := range updates {
		s.updated(u.old, u.updated)
	}
	return Changes{Added: len(added), Removed: len(removed), Updated: len(updates)}
}

// Add stores items and delivers them to observers.
func (s *Store) Add(ctx context.Context, items ...item.Item) (Changes, error) {
	for _, it := range items {
		if err := s.p.Store(ctx, it); err != nil {
			return s.Refresh(ctx), err
		}
	}
	return s.Refresh(ctx), nil
}

// Remove deletes items by id and delivers the removals to observers.
func (s *Store) Remove(ctx context.Context, ids ...string) (Changes, error) {
	for _, id := range ids {
		if err := s.p.Delete(ctx, id); err != nil {
			return s.Refresh(ctx), err
		}
	}
	return s.Refresh(ctx), nil
}

// Update stores it over the item with the same id.
func (s *Store) Update(ctx context.Context, it item.Item) (Changes, error) {
	if _, err := s.p.Get(ctx, it.ID); err != nil {
		return Changes{}, err
	}
	if err := s.p.Store(ctx, it); err != nil {
		return s.Refresh(ctx), err
	}
	return s.Refresh(ctx), nil
}
