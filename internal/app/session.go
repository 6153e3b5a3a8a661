package app

import (
	"fmt"
	"time"

	"blockies/internal/core"
	"blockies/pkg/identicon"
)

// Session holds the viewer state that does not depend on a window: the
// current seed and size, the identicon they produce and the slideshow timer.
type Session struct {
	cfg       Config
	startSeed string
	newSeed   func() string
	icon      *identicon.Identicon
	slideshow bool
	timer     *core.FixedStep
}

// NewSession generates the first identicon from cfg. newSeed supplies seeds
// for the S key and the slideshow.
func NewSession(cfg Config, newSeed func() string, interval time.Duration) (*Session, error) {
	if newSeed == nil {
		return nil, fmt.Errorf("session: nil seed source")
	}
	s := &Session{
		cfg:       cfg,
		startSeed: cfg.Seed,
		newSeed:   newSeed,
		timer:     core.NewFixedStep(interval),
	}
	if err := s.regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) regenerate() error {
	ic, err := s.cfg.Generate()
	if err != nil {
		return err
	}
	s.icon = ic
	return nil
}

// Identicon returns the identicon currently on display.
func (s *Session) Identicon() *identicon.Identicon { return s.icon }

// Seed returns the seed of the current identicon.
func (s *Session) Seed() string { return s.cfg.Seed }

// Size returns the current grid size.
func (s *Session) Size() int { return s.cfg.Size }

// Slideshow reports whether the slideshow is running.
func (s *Session) Slideshow() bool { return s.slideshow }

// Snapshot describes the current identicon for the HUD.
func (s *Session) Snapshot() core.ParameterSnapshot {
	return core.Snapshot(s.cfg.Seed, s.icon)
}

// SetSeed switches to seed, keeping size and overrides.
func (s *Session) SetSeed(seed string) error {
	prev := s.cfg.Seed
	s.cfg.Seed = seed
	if err := s.regenerate(); err != nil {
		s.cfg.Seed = prev
		return err
	}
	return nil
}

// NextSeed switches to a fresh seed from the seed source.
func (s *Session) NextSeed() error { return s.SetSeed(s.newSeed()) }

// Restore returns to the seed the session started with.
func (s *Session) Restore() error { return s.SetSeed(s.startSeed) }

// Resize changes the grid size by delta. Sizes below one are ignored.
func (s *Session) Resize(delta int) error {
	size := s.cfg.Size + delta
	if size < 1 {
		return nil
	}
	prev := s.cfg.Size
	s.cfg.Size = size
	if err := s.regenerate(); err != nil {
		s.cfg.Size = prev
		return err
	}
	return nil
}

// ToggleSlideshow starts or stops the slideshow. Starting it waits a full
// interval before the first new seed.
func (s *Session) ToggleSlideshow() {
	s.slideshow = !s.slideshow
	if s.slideshow {
		s.timer.Reset()
		s.timer.ShouldStep()
	}
}

// Tick advances the slideshow. It reports whether the identicon changed.
func (s *Session) Tick() (bool, error) {
	if !s.slideshow || !s.timer.ShouldStep() {
		return false, nil
	}
	if err := s.NextSeed(); err != nil {
		return false, err
	}
	return true, nil
}
