package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/datasets/internal/core"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, ds := range core.All() {
				if _, err := fmt.Fprintf(out, "%-10s %-28s %2d columns  %s\n",
					ds.Name, ds.Label, len(ds.Schema.Fields), ds.DefaultPath); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
