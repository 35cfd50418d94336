package dategroup

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/item"
)

// Kind discriminates the Row variants.
type Kind int

const (
	KindDateHeader Kind = iota + 1
	KindSectionHeader
	KindContent
	KindSeparator
)

func (k Kind) String() string {
	switch k {
	case KindDateHeader:
		return "date"
	case KindSectionHeader:
		return "section"
	case KindContent:
		return "item"
	case KindSeparator:
		return "separator"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Namespace seeds the name-based UUIDs returned by Row.StableID.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://tableflip.dev/daylist/rows"))

// Row is one entry of the materialized list. Which fields are meaningful
// depends on Kind:
//
//	KindDateHeader     Day
//	KindSectionHeader  Day, Category, Occurrence
//	KindContent        Day, Category, Item
//	KindSeparator      Day, Category, Occurrence, DateBoundary
//
// Day is always the local start of the day the row belongs to. A separator
// carries the day and category of the run that follows it.
type Row struct {
	Kind         Kind
	Day          time.Time
	Category     glyph.Category
	DateBoundary bool
	// Occurrence numbers the runs of Category within Day, starting at 1.
	// Only a category that reappears after a different one gets past 1.
	Occurrence int
	Item       item.Item
}

func DateHeader(day time.Time) Row {
	return Row{Kind: KindDateHeader, Day: day}
}

func SectionHeader(day time.Time, category glyph.Category, occurrence int) Row {
	return Row{Kind: KindSectionHeader, Day: day, Category: category, Occurrence: occurrence}
}

func Content(day time.Time, it item.Item) Row {
	return Row{Kind: KindContent, Day: day, Category: it.Category, Item: it}
}

func Separator(day time.Time, category glyph.Category, dateBoundary bool, occurrence int) Row {
	return Row{Kind: KindSeparator, Day: day, Category: category, DateBoundary: dateBoundary, Occurrence: occurrence}
}

// DayStartMs is Day in epoch milliseconds.
func (r Row) DayStartMs() int64 {
	return r.Day.UnixMilli()
}

// Key is the semantic key of the row. It depends only on what the row
// stands for, never on where it sits, and distinct rows of one projection
// always have distinct keys:
//
//	date/<dayStartMs>
//	section/<dayStartMs>/<category>[#<occurrence>]
//	item/<id>
//	separator/<dayStartMs>/date/<category>
//	separator/<dayStartMs>/category/<category>[#<occurrence>]
//
// The occurrence suffix is only written for occurrences past the first.
func (r Row) Key() string {
	var b strings.Builder
	b.WriteString(r.Kind.String())
	b.WriteByte('/')
	switch r.Kind {
	case KindContent:
		b.WriteString(r.Item.ID)
		return b.String()
	case KindDateHeader:
		b.WriteString(strconv.FormatInt(r.DayStartMs(), 10))
		return b.String()
	case KindSeparator:
		b.WriteString(strconv.FormatInt(r.DayStartMs(), 10))
		if r.DateBoundary {
			b.WriteString("/date/")
		} else {
			b.WriteString("/category/")
		}
	case KindSectionHeader:
		b.WriteString(strconv.FormatInt(r.DayStartMs(), 10))
		b.WriteByte('/')
	default:
		panic(fmt.Sprintf("dategroup: key of invalid row kind %d", r.Kind))
	}
	b.WriteString(r.Category.String())
	if r.Occurrence > 1 {
		b.WriteByte('#')
		b.WriteString(strconv.Itoa(r.Occurrence))
	}
	return b.String()
}

// StableID is a version 5 UUID of Key in Namespace.
func (r Row) StableID() uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(r.Key()))
}

// Equal reports whether two rows would render identically.
func (r Row) Equal(o Row) bool {
	if r.Kind != o.Kind || !r.Day.Equal(o.Day) || r.Category != o.Category ||
		r.DateBoundary != o.DateBoundary || r.Occurrence != o.Occurrence {
		return false
	}
	if r.Kind == KindContent {
		return r.Item.Equal(o.Item)
	}
	return true
}

func (r Row) String() string {
	day := r.Day.Format(time.DateOnly)
	switch r.Kind {
	case KindDateHeader:
		return "DateHeader(" + day + ")"
	case KindSectionHeader:
		return "SectionHeader(" + day + "," + r.Category.String() + ")"
	case KindContent:
		return "Content(" + r.Item.ID + ")"
	case KindSeparator:
		return "Separator(" + day + ",date=" + strconv.FormatBool(r.DateBoundary) + ")"
	default:
		return r.Kind.String()
	}
}
