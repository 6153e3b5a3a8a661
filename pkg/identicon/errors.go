package identicon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDimension reports a grid size that is not a positive integer.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidColor reports an override that does not parse as a CSS color.
	ErrInvalidColor = errors.New("invalid override color")
)

// ParseSize parses a grid side length from text such as a flag or query
// value. Non-integers, zero and negatives fail with ErrInvalidDimension.
func ParseSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidDimension, s)
	}
	if err := checkSize(n); err != nil {
		return 0, err
	}
	return n, nil
}

func checkSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: size %d must be positive", ErrInvalidDimension, n)
	}
	return nil
}
