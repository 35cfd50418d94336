package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daylist/pkg/glyph"
	"tableflip.dev/daylist/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("DAYLIST_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "DAYLIST_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "DAYLIST_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if file := store.ConfigFile(n.Config); file != "" {
		_, _ = fmt.Fprintln(out, "Config.file:", file)
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	counts := make(map[glyph.Category]int)
	all := n.Persistence.ListAll(ctx)
	for _, it := range all {
		counts[it.Category]++
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Category"), bold.Sprint("Items"))
	for _, c := range glyph.Categories() {
		tbl.AddRow(c.Symbol()+" "+c.String(), counts[c])
	}
	tbl.AddRow("total", len(all))
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
