package render

import (
	"bytes"
	"image/color"
	"image/png"
	"slices"
	"testing"

	"tomato-ca/internal/automata"
	"tomato-ca/internal/core"
)

func TestSubsetDistinct(t *testing.T) {
	for n := 1; n <= len(Default); n++ {
		sub := Subset(Default, n)
		if len(sub) != n {
			t.Fatalf("n=%d: got %d colours", n, len(sub))
		}
		seen := map[core.RGB]bool{}
		for _, c := range sub {
			if seen[c] {
				t.Fatalf("n=%d: duplicate colour %v in %v", n, c, sub)
			}
			seen[c] = true
		}
		if sub[0] != Default[0] {
			t.Fatalf("n=%d: first colour %v, want background", n, sub[0])
		}
	}
	if got := Subset(Default, 2); got[1] != Default[len(Default)-1] {
		t.Fatalf("two-state subset ends with %v", got[1])
	}
}

func TestSubsetInterpolates(t *testing.T) {
	p := core.Palette{{0, 0, 0}, {200, 100, 0}}
	got := Subset(p, 3)
	want := core.Palette{{0, 0, 0}, {100, 50, 0}, {200, 100, 0}}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if len(Subset(Default, 200)) != 200 {
		t.Fatal("subset larger than the ramp must still have n colours")
	}
	if Subset(nil, 4) != nil || Subset(Default, 0) != nil {
		t.Fatal("empty input must give an empty subset")
	}
}

func TestForAutomaton(t *testing.T) {
	life := automata.MustNew(automata.FamilyLife, "Life", "23/3")
	if got := ForAutomaton(life); len(got) != 2 {
		t.Fatalf("life palette has %d colours", len(got))
	}
	override := core.Palette{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}}
	brain := automata.MustNew(automata.FamilyGenerations, "Brain", "/2/3", automata.WithColorOverride(override))
	if got := ForAutomaton(brain); !slices.Equal(got, override) {
		t.Fatalf("override ignored: %v", got)
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	cells := []uint8{0, 1, 7}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	want := []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}

	fillPaletteRGBA(buf, cells, nil)
	if !slices.Equal(buf, make([]byte, len(buf))) {
		t.Fatalf("empty palette must clear the buffer, got %v", buf)
	}
}

func TestWritePNG(t *testing.T) {
	b := core.NewBoard(2, 3)
	b.Set(1, 2, 1)
	p := core.Palette{{0, 0, 0}, {255, 255, 255}}

	var out bytes.Buffer
	if err := WritePNG(&out, b, p, 4); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 12 || got.Y != 8 {
		t.Fatalf("image is %v, want 12x8", got)
	}
	r, g, bl, _ := img.At(2*4+2, 1*4+2).RGBA()
	if r>>8 != 255 || g>>8 != 255 || bl>>8 != 255 {
		t.Fatalf("live cell pixel is %d,%d,%d", r>>8, g>>8, bl>>8)
	}
	r, g, bl, _ = img.At(2, 2).RGBA()
	if r != 0 || g != 0 || bl != 0 {
		t.Fatalf("dead cell pixel is %d,%d,%d", r>>8, g>>8, bl>>8)
	}
}
