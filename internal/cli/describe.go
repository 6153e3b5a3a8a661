package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"blockies/internal/core"
)

var (
	groupStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(12)
)

func describeCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [seed]",
		Short: "Print the palette and cell counts of an identicon",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *d.cfg
			cfg.Seed = d.resolveSeed(args)
			ic, err := cfg.Generate()
			if err != nil {
				return err
			}
			writeSnapshot(d.stdout, core.Snapshot(cfg.Seed, ic))
			return nil
		},
	}
	d.cfg.Bind(cmd.Flags())
	return cmd
}

func writeSnapshot(w io.Writer, snap core.ParameterSnapshot) {
	for i, g := range snap.Groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, groupStyle.Render(g.Name))
		for _, p := range g.Params {
			fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(p.Label), p.Value)
		}
	}
}
