// Package cli implements the blockies command line.
package cli

import (
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"blockies/internal/app"
)

// deps carries what commands need from the outside world.
type deps struct {
	stdout io.Writer
	logger *log.Logger
	// newSeed supplies a seed when the user gives none. The library never
	// invents seeds itself.
	newSeed func() string
	cfg     *app.Config
}

// NewRootCmd builds the command tree writing to stdout and logging to
// stderr. cfg carries defaults, typically already overlaid from the
// environment.
func NewRootCmd(stdout, stderr io.Writer, cfg *app.Config) *cobra.Command {
	d := &deps{
		stdout:  stdout,
		logger:  log.New(stderr, "blockies: ", 0),
		newSeed: uuid.NewString,
		cfg:     cfg,
	}
	return newRootCmd(d)
}

func newRootCmd(d *deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "blockies",
		Short:         "Generate deterministic blocky identicons from seeds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(d.stdout)
	root.AddCommand(
		renderCmd(d),
		describeCmd(d),
		formatsCmd(d),
	)
	return root
}

// resolveSeed returns the positional seed, the configured one, or a fresh
// random seed which is logged so the icon can be reproduced.
func (d *deps) resolveSeed(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if d.cfg.Seed != "" {
		return d.cfg.Seed
	}
	seed := d.newSeed()
	d.logger.Printf("no seed given, using %s", seed)
	return seed
}
