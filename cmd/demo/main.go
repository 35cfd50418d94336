package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/dategroup"
	"tableflip.dev/daylist/pkg/listmodel"
	"tableflip.dev/daylist/pkg/printers"
	"tableflip.dev/daylist/pkg/source"
	"tableflip.dev/daylist/pkg/store"
)

func main() {
	persist := false

	rootCmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay a scripted history and show how the list is kept up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if persist {
				return seed(cmd.Context())
			}
			return replay()
		},
	}
	rootCmd.Flags().BoolVar(&persist, "store", false, "write the sample items to the configured store instead")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func seed(ctx context.Context) error {
	p, err := store.Load(nil)
	if err != nil {
		return err
	}
	for _, it := range samples(time.Now()) {
		if err := p.Store(ctx, it); err != nil {
			return err
		}
	}
	fmt.Println("stored sample items in", p.BasePath())
	return nil
}

func replay() error {
	mem := source.NewMemory()
	model := listmodel.New[dategroup.Row]()
	rec := &listmodel.Recorder{}
	model.AddObserver(rec)
	mut := dategroup.New(mem, model, dategroup.WithStrict(true))
	defer mut.Close()

	pp := printers.PrettyPrint{}
	step := color.New(color.FgCyan, color.Bold)
	faint := color.New(color.Faint)

	for _, s := range script(time.Now()) {
		rec.Reset()
		if err := s.apply(mem); err != nil {
			return err
		}
		_, _ = step.Fprintln(color.Output, "» "+s.name)
		_, _ = faint.Fprintln(color.Output, rec.Changes)
		pp.Rows(model.Items())
		pp.NewLine()
	}
	return nil
}
