package core

import (
	"slices"
	"testing"
)

func TestGridRowsAndMirror(t *testing.T) {
	g := NewGrid(3)
	copy(g.Cells(), []uint8{
		1, 0, 1,
		2, 2, 2,
		0, 1, 0,
	})

	if !slices.Equal(g.Row(1), []uint8{2, 2, 2}) {
		t.Fatalf("row 1 = %v", g.Row(1))
	}
	if g.At(1, 2) != CellForeground {
		t.Fatalf("At(1,2) = %d, expected foreground", g.At(1, 2))
	}
	if !g.Mirrored() {
		t.Fatal("symmetric grid reported as not mirrored")
	}

	g.Cells()[g.Index(0, 2)] = CellSpot
	if g.Mirrored() {
		t.Fatal("asymmetric grid reported as mirrored")
	}
}

func TestGridCloneIsDeep(t *testing.T) {
	g := NewGrid(2)
	g.Cells()[0] = CellSpot
	c := g.Clone()
	c.Cells()[0] = CellBackground
	if g.Cells()[0] != CellSpot {
		t.Fatal("mutating clone changed the original")
	}
}

func TestGridCount(t *testing.T) {
	g := NewGrid(2)
	copy(g.Cells(), []uint8{0, 1, 1, 2})
	if got := g.Count(); got != [3]int{1, 2, 1} {
		t.Fatalf("Count() = %v", got)
	}
}
