package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"blockies/pkg/identicon"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Seed      string `env:"BLOCKIES_SEED"`
	Size      int    `env:"BLOCKIES_SIZE"`
	Scale     int    `env:"BLOCKIES_SCALE"`
	Color     string `env:"BLOCKIES_COLOR"`
	BgColor   string `env:"BLOCKIES_BG_COLOR"`
	SpotColor string `env:"BLOCKIES_SPOT_COLOR"`
	Format    string `env:"BLOCKIES_FORMAT"`
	Output    string `env:"BLOCKIES_OUTPUT"`

	PreserveLayout bool `env:"BLOCKIES_PRESERVE_LAYOUT"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Size: 8, Scale: 4, Format: "png"}
}

// LoadEnv overlays BLOCKIES_* variables, reading files (default ".env")
// first when present. Missing files are not an error.
func (c *Config) LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the identicon parameters to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.Var((*sizeValue)(&c.Size), "size", "grid side length in cells")
	fs.StringVar(&c.Color, "color", c.Color, "foreground color override (CSS color)")
	fs.StringVar(&c.BgColor, "bg-color", c.BgColor, "background color override (CSS color)")
	fs.StringVar(&c.SpotColor, "spot-color", c.SpotColor, "spot color override (CSS color)")
	fs.BoolVar(&c.PreserveLayout, "preserve-layout", c.PreserveLayout, "keep the bitmap of the un-overridden icon")
}

// BindOutput attaches the rendering parameters to the provided FlagSet.
func (c *Config) BindOutput(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.StringVar(&c.Format, "format", c.Format, "output format")
	fs.StringVarP(&c.Output, "output", "o", c.Output, "output path, stdout when empty or -")
}

// Options converts the overrides into generation options.
func (c *Config) Options() []identicon.Option {
	opts := []identicon.Option{
		identicon.WithColor(c.Color),
		identicon.WithBgColor(c.BgColor),
		identicon.WithSpotColor(c.SpotColor),
	}
	if c.PreserveLayout {
		opts = append(opts, identicon.PreserveLayout())
	}
	return opts
}

// Generate builds the identicon described by c.
func (c *Config) Generate() (*identicon.Identicon, error) {
	return identicon.Generate(c.Seed, c.Size, c.Options()...)
}

// Validate rejects settings that cannot produce an image.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size: %w: %d", identicon.ErrInvalidDimension, c.Size)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	return nil
}

// sizeValue parses --size with identicon.ParseSize so bad input reports an
// invalid dimension.
type sizeValue int

func (s *sizeValue) String() string { return strconv.Itoa(int(*s)) }

func (s *sizeValue) Set(v string) error {
	n, err := identicon.ParseSize(v)
	if err != nil {
		return err
	}
	*s = sizeValue(n)
	return nil
}

func (s *sizeValue) Type() string { return "int" }
