package identicon

import (
	"errors"
	"slices"
	"testing"
)

// Reference vectors produced by the blockies.js algorithm.
const (
	ethColor = "hsl(0,40.00097702257335%,10.60733626363799%)"
	ethBg    = "hsl(9,53.60077040269971%,12.587486952543259%)"
	ethSpot  = "hsl(215,90.30048648826778%,64.99767019413412%)"
)

type golden struct {
	seed    string
	size    int
	opts    []Option
	color   string
	bgColor string
	spot    string
	bitmap  string
}

var goldens = []golden{
	{
		seed: "eth", size: 8,
		color: ethColor, bgColor: ethBg, spot: ethSpot,
		bitmap: "1110011100022000001001000100001010200201010110100111111000000000",
	},
	{
		seed: "eth", size: 1,
		color: ethColor, bgColor: ethBg, spot: ethSpot,
		bitmap: "1",
	},
	{
		seed: "eth", size: 2,
		color: ethColor, bgColor: ethBg, spot: ethSpot,
		bitmap: "1111",
	},
	{
		seed: "eth", size: 3,
		color: ethColor, bgColor: ethBg, spot: ethSpot,
		bitmap: "111101000",
	},
	{
		seed: "eth", size: 5,
		color: ethColor, bgColor: ethBg, spot: ethSpot,
		bitmap: "1111100000020200101001010",
	},
	{
		seed: "", size: 4,
		color: "hsl(0,40%,0%)", bgColor: "hsl(0,40%,0%)", spot: "hsl(0,40%,0%)",
		bitmap: "0000000000000000",
	},
	{
		seed: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", size: 8,
		color:   "hsl(244,76.86842918395996%,39.39564910251647%)",
		bgColor: "hsl(296,56.29286986775696%,34.419715544208884%)",
		spot:    "hsl(43,58.76168238930404%,55.515767994802445%)",
		bitmap:  "0110011010022001110000111110011110111101001111000001100001011010",
	},
	{
		seed: "hello world, this is a long seed that overflows", size: 7,
		color:   "hsl(21,88.06012449786067%,46.78899934515357%)",
		bgColor: "hsl(108,61.90383403562009%,75.11471902253106%)",
		spot:    "hsl(331,71.53067518956959%,29.002000647597015%)",
		bitmap:  "1012101001010000010001002001200100210020010101010",
	},
	{
		seed: "héllo 🙂", size: 6,
		color:   "hsl(1,40.254406463354826%,18.80285550141707%)",
		bgColor: "hsl(112,41.172345308586955%,73.68307413998991%)",
		spot:    "hsl(82,68.33783635869622%,63.957701122853905%)",
		bitmap:  "101101010010100001011110011110110011",
	},
	{
		seed: "Alice", size: 10,
		color:   "hsl(0,40.11908323504031%,9.183478879276663%)",
		bgColor: "hsl(25,41.643105540424585%,5.626227217726409%)",
		spot:    "hsl(162,83.7229363899678%,45.447311957832426%)",
		bitmap:  "1001111001102111120100010010001202112021010111101000011110001110000111111022011110112211010012002100",
	},
	{
		seed: "eth", size: 8, opts: []Option{WithColor("#ff0000")},
		color: "#ff0000", bgColor: ethColor, spot: ethBg,
		bitmap: "1110011121111112100000010200002010011001001001002001100201011010",
	},
	{
		seed: "eth", size: 8, opts: []Option{WithBgColor("#000")},
		color: ethColor, bgColor: "#000", spot: ethBg,
		bitmap: "1110011121111112100000010200002010011001001001002001100201011010",
	},
	{
		seed: "eth", size: 8, opts: []Option{WithSpotColor("red")},
		color: ethColor, bgColor: ethBg, spot: "red",
		bitmap: "1110011121111112100000010200002010011001001001002001100201011010",
	},
	{
		seed: "eth", size: 8, opts: []Option{WithColor("#fff"), WithBgColor("#000"), WithSpotColor("#f00")},
		color: "#fff", bgColor: "#000", spot: "#f00",
		bitmap: "0000000000000000000000001110011121111112100000010200002010011001",
	},
}

func bitmapString(cells []uint8) string {
	b := make([]byte, len(cells))
	for i, c := range cells {
		b[i] = '0' + c
	}
	return string(b)
}

func TestGenerateMatchesReferenceVectors(t *testing.T) {
	for _, g := range goldens {
		ic, err := Generate(g.seed, g.size, g.opts...)
		if err != nil {
			t.Fatalf("seed %q size %d: %v", g.seed, g.size, err)
		}
		if got := ic.Color().String(); got != g.color {
			t.Fatalf("seed %q size %d: color %s, expected %s", g.seed, g.size, got, g.color)
		}
		if got := ic.BgColor().String(); got != g.bgColor {
			t.Fatalf("seed %q size %d: bgColor %s, expected %s", g.seed, g.size, got, g.bgColor)
		}
		if got := ic.SpotColor().String(); got != g.spot {
			t.Fatalf("seed %q size %d: spotColor %s, expected %s", g.seed, g.size, got, g.spot)
		}
		if got := bitmapString(ic.Bitmap()); got != g.bitmap {
			t.Fatalf("seed %q size %d: bitmap\n got %s\nwant %s", g.seed, g.size, got, g.bitmap)
		}
		if ic.Size() != g.size {
			t.Fatalf("seed %q: Size() = %d, expected %d", g.seed, ic.Size(), g.size)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, seed := range []string{"", "a", "eth", "some longer seed 0123456789"} {
		for size := 1; size <= 16; size++ {
			a, err := Generate(seed, size)
			if err != nil {
				t.Fatal(err)
			}
			b, err := Generate(seed, size)
			if err != nil {
				t.Fatal(err)
			}
			if !a.Equal(b) {
				t.Fatalf("seed %q size %d not deterministic", seed, size)
			}
		}
	}
}

func TestGenerateSeedSensitivity(t *testing.T) {
	seen := map[string]string{}
	for _, seed := range []string{"alice", "bob", "carol", "dave", "erin", "frank"} {
		ic, err := Generate(seed, 8)
		if err != nil {
			t.Fatal(err)
		}
		key := ic.Color().String() + bitmapString(ic.Bitmap())
		if prev, ok := seen[key]; ok {
			t.Fatalf("seeds %q and %q produced the same identicon", prev, seed)
		}
		seen[key] = seed
	}
}

func TestMirrorAndRanges(t *testing.T) {
	for size := 1; size <= 21; size++ {
		ic, err := Generate("mirror", size)
		if err != nil {
			t.Fatal(err)
		}
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				v := ic.At(c, r)
				if v > 2 {
					t.Fatalf("size %d cell (%d,%d) = %d", size, c, r, v)
				}
				if v != ic.At(size-1-c, r) {
					t.Fatalf("size %d row %d not mirrored at column %d", size, r, c)
				}
			}
		}
		if !ic.Grid().Mirrored() {
			t.Fatalf("size %d grid reports not mirrored", size)
		}
		if len(ic.Bitmap()) != size*size {
			t.Fatalf("size %d bitmap length %d", size, len(ic.Bitmap()))
		}
	}
}

func TestPaletteRanges(t *testing.T) {
	for i := 0; i < 200; i++ {
		ic, err := Generate(string(rune('A'+i%26))+string(rune('a'+i/26)), 4)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range []Color{ic.Color(), ic.BgColor(), ic.SpotColor()} {
			h, ok := c.HSL()
			if !ok {
				t.Fatalf("generated color %s has no HSL", c)
			}
			if h.H < 0 || h.H >= 360 {
				t.Fatalf("hue out of range: %s", c)
			}
			if h.S < 40 || h.S >= 100 {
				t.Fatalf("saturation out of range: %s", c)
			}
			if h.L < 0 || h.L >= 100 {
				t.Fatalf("lightness out of range: %s", c)
			}
		}
	}
}

func TestPreserveLayoutKeepsBitmap(t *testing.T) {
	plain, err := Generate("eth", 8)
	if err != nil {
		t.Fatal(err)
	}
	pinned, err := Generate("eth", 8, WithBgColor("#123456"), PreserveLayout())
	if err != nil {
		t.Fatal(err)
	}
	if pinned.BgColor().String() != "#123456" {
		t.Fatalf("bgColor = %s", pinned.BgColor())
	}
	if pinned.Color() != plain.Color() || pinned.SpotColor() != plain.SpotColor() {
		t.Fatal("other slots changed under PreserveLayout")
	}
	if !slices.Equal(pinned.Bitmap(), plain.Bitmap()) {
		t.Fatal("bitmap changed under PreserveLayout")
	}
}

func TestGenerateRejectsBadSize(t *testing.T) {
	for _, size := range []int{0, -1, -64} {
		ic, err := Generate("eth", size)
		if !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("size %d: err = %v, expected ErrInvalidDimension", size, err)
		}
		if ic != nil {
			t.Fatalf("size %d returned a partial identicon", size)
		}
	}
}

func TestGenerateRejectsBadOverride(t *testing.T) {
	ic, err := Generate("eth", 8, WithColor("#ff0000"), WithSpotColor("not-a-color"))
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("err = %v, expected ErrInvalidColor", err)
	}
	if ic != nil {
		t.Fatal("returned a partial identicon")
	}
}

func TestParseSize(t *testing.T) {
	if n, err := ParseSize(" 12 "); err != nil || n != 12 {
		t.Fatalf("ParseSize(12) = %d, %v", n, err)
	}
	for _, s := range []string{"0", "-3", "2.5", "eight", ""} {
		if _, err := ParseSize(s); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("ParseSize(%q) err = %v", s, err)
		}
	}
}

func TestBitmapIsCopied(t *testing.T) {
	ic, err := Generate("eth", 8)
	if err != nil {
		t.Fatal(err)
	}
	cells := ic.Bitmap()
	cells[0] = 2
	ic.Grid().Cells()[1] = 2
	if got := bitmapString(ic.Bitmap()); got != goldens[0].bitmap {
		t.Fatalf("identicon mutated through accessor: %s", got)
	}
}
