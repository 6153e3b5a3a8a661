package core

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"blockies/pkg/identicon"
)

// ErrUnknownEncoder is returned by Lookup for unregistered format names.
var ErrUnknownEncoder = errors.New("unknown encoder")

// Encoder writes an identicon in one output format.
type Encoder interface {
	Name() string
	// Extension is the conventional file suffix, without the dot.
	Extension() string
	Encode(w io.Writer, ic *identicon.Identicon) error
}

// Factory constructs an Encoder using an optional configuration map.
type Factory func(cfg map[string]string) Encoder

var encoders = map[string]Factory{}

// Register adds an encoder factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	encoders[name] = f
}

// Encoders exposes the registry of available encoder factories.
func Encoders() map[string]Factory {
	return encoders
}

// Names lists registered encoders in sorted order.
func Names() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named encoder.
func Lookup(name string, cfg map[string]string) (Encoder, error) {
	f, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownEncoder, name)
	}
	return f(cfg), nil
}
