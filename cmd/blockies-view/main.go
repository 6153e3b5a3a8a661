//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"
	"time"

	"blockies/internal/app"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 32
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}

	var (
		interval time.Duration
		tps      int
	)
	cfg.Bind(pflag.CommandLine)
	pflag.IntVar(&cfg.Scale, "scale", cfg.Scale, "pixels per cell")
	pflag.StringVar(&cfg.Seed, "seed", cfg.Seed, "starting seed, random when empty")
	pflag.DurationVar(&interval, "interval", 2*time.Second, "slideshow interval")
	pflag.IntVar(&tps, "tps", 30, "updates per second")
	pflag.Parse()

	if cfg.Seed == "" {
		cfg.Seed = uuid.NewString()
		log.Printf("no seed given, using %s", cfg.Seed)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	session, err := app.NewSession(*cfg, uuid.NewString, interval)
	if err != nil {
		log.Fatal(err)
	}
	game := app.New(session, cfg.Scale, log.New(os.Stderr, "", log.LstdFlags))

	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
