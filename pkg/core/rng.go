package core

import "unicode/utf16"

// Stream is a four-register Xorshift generator seeded from a string. Its
// sequence depends on the seed alone, so two streams built from the same
// seed yield identical draws on every platform.
//
// A Stream is not safe for concurrent use; each generation owns its own.
type Stream struct {
	x, y, z, w int32
}

// NewStream folds seed into the four registers. Each UTF-16 code unit at
// index i updates register i%4 as acc*31 + unit with 32-bit wraparound.
func NewStream(seed string) *Stream {
	var regs [4]int32
	for i, unit := range utf16.Encode([]rune(seed)) {
		acc := regs[i%4]
		regs[i%4] = (acc << 5) - acc + int32(unit)
	}
	return &Stream{x: regs[0], y: regs[1], z: regs[2], w: regs[3]}
}

// Next advances the generator by one step and returns the new w register.
// The arithmetic right shifts clear the sign bit, so the result is never
// negative.
func (s *Stream) Next() int32 {
	t := s.x ^ (s.x << 11)
	s.x, s.y, s.z = s.y, s.z, s.w
	s.w = s.w ^ (s.w >> 19) ^ t ^ (t >> 8)
	return s.w
}

// Float64 draws a value in [0, 1).
func (s *Stream) Float64() float64 {
	return float64(uint32(s.Next())) / (1 << 31)
}

// State returns the current registers in x, y, z, w order.
func (s *Stream) State() [4]int32 { return [4]int32{s.x, s.y, s.z, s.w} }
