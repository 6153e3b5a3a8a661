package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"blockies/internal/core"
)

func renderCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [seed]",
		Short: "Render an identicon in the chosen format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(d, args)
		},
	}
	d.cfg.Bind(cmd.Flags())
	d.cfg.BindOutput(cmd.Flags())
	return cmd
}

func runRender(d *deps, args []string) error {
	cfg := *d.cfg
	cfg.Seed = d.resolveSeed(args)
	if err := cfg.Validate(); err != nil {
		return err
	}
	enc, err := core.Lookup(cfg.Format, map[string]string{"scale": strconv.Itoa(cfg.Scale)})
	if err != nil {
		return err
	}
	ic, err := cfg.Generate()
	if err != nil {
		return err
	}

	if cfg.Output == "" || cfg.Output == "-" {
		return enc.Encode(d.stdout, ic)
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := enc.Encode(f, ic); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
