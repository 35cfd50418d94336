package listmodel

import "fmt"

// Op names a kind of structural change.
type Op string

const (
	OpInsert Op = "insert"
	OpRemove Op = "remove"
	OpChange Op = "change"
)

// Change is one recorded notification.
type Change struct {
	Op    Op
	Index int
	Count int
}

func (c Change) String() string {
	return fmt.Sprintf("%s[%d,+%d]", c.Op, c.Index, c.Count)
}

// Recorder is an Observer that keeps every notification it receives.
type Recorder struct {
	Changes []Change
}

func (r *Recorder) ItemsInserted(index, count int) {
	r.Changes = append(r.Changes, Change{Op: OpInsert, Index: index, Count: count})
}

func (r *Recorder) ItemsRemoved(index, count int) {
	r.Changes = append(r.Changes, Change{Op: OpRemove, Index: index, Count: count})
}

func (r *Recorder) ItemsChanged(index, count int) {
	r.Changes = append(r.Changes, Change{Op: OpChange, Index: index, Count: count})
}

// Reset drops recorded changes.
func (r *Recorder) Reset() {
	r.Changes = nil
}
