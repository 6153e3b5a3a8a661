package identicon

import "blockies/pkg/core"

// cellSpread scales a draw so that flooring it gives background and
// foreground about 43% each and spot about 13%.
const cellSpread = 2.3

// NewBitmap draws a size*size grid. Each row draws ceil(size/2) cells from
// src and completes itself by appending the first size-ceil(size/2) of them
// in reverse. For odd sizes the centre column has no twin.
func NewBitmap(size int, src Source) (*core.Grid, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	half := (size + 1) / 2
	mirror := size - half

	g := core.NewGrid(size)
	for y := 0; y < size; y++ {
		row := g.Row(y)
		for x := 0; x < half; x++ {
			row[x] = uint8(src.Float64() * cellSpread)
		}
		for i := 0; i < mirror; i++ {
			row[half+i] = row[mirror-1-i]
		}
	}
	return g, nil
}
