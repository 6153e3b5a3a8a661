package core

// Cell values stored in a Grid.
const (
	CellBackground uint8 = iota
	CellForeground
	CellSpot
)

// Grid stores a square grid of tri-state cell values in row-major order.
type Grid struct {
	size int
	data []uint8
}

// NewGrid allocates an empty size*size grid. Callers validate size.
func NewGrid(size int) *Grid {
	return &Grid{size: size, data: make([]uint8, size*size)}
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.size + x }

// At returns the cell at column x, row y.
func (g *Grid) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// Row returns the cells of row y without copying.
func (g *Grid) Row(y int) []uint8 {
	start := y * g.size
	return g.data[start : start+g.size]
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, data: append([]uint8(nil), g.data...)}
}

// Mirrored reports whether every row reads the same in both directions.
func (g *Grid) Mirrored() bool {
	for y := 0; y < g.size; y++ {
		row := g.Row(y)
		for x := 0; x < g.size/2; x++ {
			if row[x] != row[g.size-1-x] {
				return false
			}
		}
	}
	return true
}

// Count tallies cells by value. Values above CellSpot are ignored.
func (g *Grid) Count() [3]int {
	var out [3]int
	for _, c := range g.data {
		if int(c) < len(out) {
			out[c]++
		}
	}
	return out
}
