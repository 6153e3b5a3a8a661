package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"blockies/internal/core"
)

func formatsCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range core.Names() {
				enc, err := core.Lookup(name, nil)
				if err != nil {
					return err
				}
				fmt.Fprintf(d.stdout, "%s\t.%s\n", name, enc.Extension())
			}
			return nil
		},
	}
}
