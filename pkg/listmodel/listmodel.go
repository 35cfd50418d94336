// Package listmodel holds an ordered sequence of rows and tells observers
// about every structural edit. It knows nothing about what the rows mean.
//
// A Model is not safe for concurrent use. It is driven from a single
// goroutine, and observers are called synchronously on that goroutine.
package listmodel

import "fmt"

// Observer receives structural change notifications. Ranges are expressed as
// (start index, count) against the sequence immediately after the edit for
// insertions and changes, and immediately before it for removals.
type Observer interface {
	ItemsInserted(index, count int)
	ItemsRemoved(index, count int)
	ItemsChanged(index, count int)
}

// Model is an observable ordered container.
type Model[T any] struct {
	items     []T
	observers []Observer
}

// New returns an empty model.
func New[T any]() *Model[T] {
	return &Model[T]{}
}

func (m *Model[T]) Len() int {
	return len(m.items)
}

// Get returns the row at index. It panics if index is out of range.
func (m *Model[T]) Get(index int) T {
	m.checkIndex(index, len(m.items)-1)
	return m.items[index]
}

// Items returns a copy of the current rows.
func (m *Model[T]) Items() []T {
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

// Insert places rows starting at index, shifting later rows back.
// index may equal Len to append.
func (m *Model[T]) Insert(index int, rows ...T) {
	m.checkIndex(index, len(m.items))
	if len(rows) == 0 {
		return
	}
	grown := make([]T, 0, len(m.items)+len(rows))
	grown = append(grown, m.items[:index]...)
	grown = append(grown, rows...)
	grown = append(grown, m.items[index:]...)
	m.items = grown
	for _, o := range m.observers {
		o.ItemsInserted(index, len(rows))
	}
}

// Remove deletes count rows starting at index.
func (m *Model[T]) Remove(index, count int) {
	if count < 0 || index < 0 || index+count > len(m.items) {
		panic(fmt.Sprintf("listmodel: remove [%d, %d) out of range [0, %d)", index, index+count, len(m.items)))
	}
	if count == 0 {
		return
	}
	var zero T
	end := index + count
	copy(m.items[index:], m.items[end:])
	for i := len(m.items) - count; i < len(m.items); i++ {
		m.items[i] = zero
	}
	m.items = m.items[:len(m.items)-count]
	for _, o := range m.observers {
		o.ItemsRemoved(index, count)
	}
}

// Set replaces the row at index in place and reports a single-index change.
func (m *Model[T]) Set(index int, row T) {
	m.checkIndex(index, len(m.items)-1)
	m.items[index] = row
	for _, o := range m.observers {
		o.ItemsChanged(index, 1)
	}
}

// AddObserver registers o. Registering the same observer twice is a no-op.
func (m *Model[T]) AddObserver(o Observer) {
	for _, existing := range m.observers {
		if existing == o {
			return
		}
	}
	m.observers = append(m.observers, o)
}

// RemoveObserver unregisters o if it is registered.
func (m *Model[T]) RemoveObserver(o Observer) {
	for i, existing := range m.observers {
		if existing == o {
			m.observers = append(m.observers[:i:i], m.observers[i+1:]...)
			return
		}
	}
}

func (m *Model[T]) checkIndex(index, max int) {
	if index < 0 || index > max {
		panic(fmt.Sprintf("listmodel: index %d out of range [0, %d]", index, max))
	}
}
