// Package item defines the timestamped, categorized records that daylist
// groups by day.
package item

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/daylist/pkg/glyph"
)

var (
	ErrMissingID       = errors.New("item: missing id")
	ErrMissingCategory = errors.New("item: missing category")
	ErrMissingCreated  = errors.New("item: missing timestamp")
)

// New returns an item with a fresh id created now.
func New(category glyph.Category, title string) *Item {
	return &Item{
		ID:       uuid.NewString(),
		Created:  Timestamp{Time: time.Now()},
		Category: category,
		Title:    title,
	}
}

// Item is a single record. Two items are the same record iff their IDs match.
type Item struct {
	ID       string         `json:"id"`
	Created  Timestamp      `json:"created"`
	Category glyph.Category `json:"category"`
	Title    string         `json:"title,omitempty"`
}

// Validate reports the first missing required field.
func (i Item) Validate() error {
	switch {
	case i.ID == "":
		return ErrMissingID
	case !i.Category.Valid():
		return fmt.Errorf("%w: %q", ErrMissingCategory, i.ID)
	case i.Created.IsZero():
		return fmt.Errorf("%w: %q", ErrMissingCreated, i.ID)
	}
	return nil
}

// Equal compares every field, including the instant of Created.
func (i Item) Equal(o Item) bool {
	return i.ID == o.ID &&
		i.Category == o.Category &&
		i.Title == o.Title &&
		i.Created.Equal(o.Created.Time)
}

func (i Item) String() string {
	return fmt.Sprintf("%s %s  %s", i.Category.Symbol(), i.Created.Local().Format(time.Kitchen), i.Title)
}
