// Package key provides CLI helpers to display the category legend.
package key

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daylist/pkg/glyph"
)

// Key prints a legend of the categories and the aliases the CLI accepts.
type Key struct {
	Out io.Writer
}

// Do renders the legend.
func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Symbol"), bold.Sprint("Category"), bold.Sprint("Aliases"))
	for _, c := range glyph.Categories() {
		g := c.Glyph()
		tbl.AddRow(g.Symbol, g.Noun, strings.Join(append([]string{g.Key}, g.Aliases...), ", "))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
