package source

import (
	"fmt"

	"tableflip.dev/daylist/pkg/item"
)

// Memory is a Source held entirely in memory.
type Memory struct {
	observers
	items map[string]item.Item
}

func NewMemory(items ...item.Item) *Memory {
	m := &Memory{items: make(map[string]item.Item, len(items))}
	for _, it := range items {
		m.items[it.ID] = it
	}
	return m
}

func (m *Memory) Items() []item.Item {
	return snapshot(m.items)
}

func (m *Memory) Len() int {
	return len(m.items)
}

// Add inserts items as one batch. It fails without notifying if any id is
// already present or appears twice in the batch.
func (m *Memory) Add(items ...item.Item) error {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if _, ok := m.items[it.ID]; ok || seen[it.ID] {
			return fmt.Errorf("source: item %q already present", it.ID)
		}
		seen[it.ID] = true
	}
	for _, it := range items {
		m.items[it.ID] = it
	}
	m.added(items)
	return nil
}

// Remove deletes items by id as one batch. It fails without notifying if an
// id is missing or repeated.
func (m *Memory) Remove(ids ...string) error {
	removed := make([]item.Item, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		it, ok := m.items[id]
		if !ok || seen[id] {
			return fmt.Errorf("source: no item %q", id)
		}
		seen[id] = true
		removed = append(removed, it)
	}
	for _, it := range removed {
		delete(m.items, it.ID)
	}
	m.removed(removed)
	return nil
}

// Update replaces the stored item with the same id.
func (m *Memory) Update(it item.Item) error {
	old, ok := m.items[it.ID]
	if !ok {
		return fmt.Errorf("source: no item %q", it.ID)
	}
	m.items[it.ID] = it
	m.updated(old, it)
	return nil
}
