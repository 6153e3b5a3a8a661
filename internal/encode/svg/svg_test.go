package svg

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"testing"

	"blockies/pkg/identicon"
)

type rect struct {
	X, Y, W, H string
	Fill       string
}

type document struct {
	attrs map[string]string
	rects []rect
}

func parse(t *testing.T, data []byte) document {
	t.Helper()
	doc := document{attrs: map[string]string{}}
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("invalid svg: %v\n%s", err, data)
		}
		el, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		attr := func(name string) string {
			for _, a := range el.Attr {
				if a.Name.Local == name {
					return a.Value
				}
			}
			return ""
		}
		switch el.Name.Local {
		case "svg":
			for _, a := range el.Attr {
				doc.attrs[a.Name.Local] = a.Value
			}
		case "rect":
			r := rect{X: attr("x"), Y: attr("y"), W: attr("width"), H: attr("height"), Fill: attr("fill")}
			doc.rects = append(doc.rects, r)
		}
	}
	return doc
}

func TestEncodeRuns(t *testing.T) {
	ic, err := identicon.Generate("eth", 8,
		identicon.WithColor("#fff"),
		identicon.WithBgColor("#000"),
		identicon.WithSpotColor("#f00"),
	)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := New(Config{Scale: 10}).Encode(&buf, ic); err != nil {
		t.Fatal(err)
	}
	doc := parse(t, buf.Bytes())

	if doc.attrs["width"] != "80" || doc.attrs["height"] != "80" {
		t.Fatalf("dimensions = %v", doc.attrs)
	}
	if doc.attrs["viewBox"] != "0 0 8 8" {
		t.Fatalf("viewBox = %q", doc.attrs["viewBox"])
	}
	if len(doc.rects) == 0 || doc.rects[0] != (rect{"0", "0", "8", "8", "#000"}) {
		t.Fatalf("missing background rect: %v", doc.rects)
	}
	// row 3 of this vector is 11100111
	found := false
	for _, r := range doc.rects {
		if r == (rect{"0", "3", "3", "1", "#fff"}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing merged run in row 3: %v", doc.rects)
	}

	// every painted cell is covered exactly once
	covered := 0
	for _, r := range doc.rects[1:] {
		if r.H != "1" {
			t.Fatalf("run spans rows: %v", r)
		}
		w, err := strconv.Atoi(r.W)
		if err != nil {
			t.Fatal(err)
		}
		covered += w
	}
	counts := ic.Grid().Count()
	if covered != counts[1]+counts[2] {
		t.Fatalf("runs cover %d cells, expected %d", covered, counts[1]+counts[2])
	}
}

func TestEncodeBlankGrid(t *testing.T) {
	// the empty seed draws only zeros, so every cell is background
	ic, err := identicon.Generate("", 4)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := New(DefaultConfig()).Encode(&buf, ic); err != nil {
		t.Fatal(err)
	}
	doc := parse(t, buf.Bytes())
	if len(doc.rects) != 1 {
		t.Fatalf("rect count = %d, expected only the background", len(doc.rects))
	}
	if doc.rects[0].Fill != "hsl(0,40%,0%)" {
		t.Fatalf("background fill = %q", doc.rects[0].Fill)
	}
}
