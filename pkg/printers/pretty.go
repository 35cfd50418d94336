package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daylist/pkg/dategroup"
)

const layoutUSDay = "Monday, January 2, 2006"

type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

// Rows prints a materialized list: each day under its title, each run of a
// category as a table, runs apart by a blank line and days by a rule.
func (pp *PrettyPrint) Rows(rows []dategroup.Row) {
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n")
		return
	}

	section := color.New(color.Bold)
	faint := color.New(color.Faint)
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)

	var tbl *uitable.Table
	flush := func() {
		if tbl != nil && len(tbl.Rows) > 0 {
			_, _ = fmt.Fprintln(pp.out(), tbl)
		}
		tbl = nil
	}
	for i, r := range rows {
		switch r.Kind {
		case dategroup.KindDateHeader:
			flush()
			pp.TitleWithCount(r.Day.Format(layoutUSDay), countDay(rows[i+1:]))
		case dategroup.KindSectionHeader:
			flush()
			n := countRun(rows[i+1:])
			_, _ = section.Fprintf(pp.out(), "  %s %s", r.Category.Symbol(), r.Category)
			_, _ = faint.Fprintf(pp.out(), " (%d)\n", n)
			tbl = uitable.New()
			tbl.Separator = "  "
		case dategroup.KindContent:
			if tbl == nil {
				tbl = uitable.New()
				tbl.Separator = "  "
			}
			when := r.Item.Created.In(r.Day.Location()).Format("15:04")
			if pp.ShowID {
				tbl.AddRow("   ", when, id.Sprint(r.Item.ID), r.Item.Title)
			} else {
				tbl.AddRow("   ", when, r.Item.Title)
			}
		case dategroup.KindSeparator:
			flush()
			if r.DateBoundary {
				_, _ = faint.Fprintln(pp.out(), strings.Repeat("─", 40))
			}
			pp.NewLine()
		}
	}
	flush()
}

func countDay(rows []dategroup.Row) int {
	n := 0
	for _, r := range rows {
		if r.Kind == dategroup.KindDateHeader {
			break
		}
		if r.Kind == dategroup.KindContent {
			n++
		}
	}
	return n
}

func countRun(rows []dategroup.Row) int {
	n := 0
	for _, r := range rows {
		if r.Kind != dategroup.KindContent {
			break
		}
		n++
	}
	return n
}
