package dategroup

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateItem = errors.New("item already live")
	ErrUnknownItem   = errors.New("item not live")
	ErrIDMismatch    = errors.New("update changes item id")
)

// InvariantError describes malformed input from a Source or a projection
// that broke its own invariants. It is raised as a panic in strict mode and
// logged otherwise.
type InvariantError struct {
	Op  string
	ID  string
	Err error
}

func (e *InvariantError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("dategroup: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("dategroup: %s %q: %v", e.Op, e.ID, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
