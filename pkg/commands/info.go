package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/runner/info"
	"tableflip.dev/daylist/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where items are stored.",
		Example: `
daylist info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			p, err := store.Load(cfg)
			if err != nil {
				return oo.HandleError(err)
			}
			s := info.Info{
				Config:      cfg,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
