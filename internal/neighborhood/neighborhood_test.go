package neighborhood

import (
	"testing"

	"tomato-ca/internal/core"
)

func TestOffsetCounts(t *testing.T) {
	o := NewOffsets()
	for r := 1; r <= MaxRange; r++ {
		side := 2*r + 1
		if got, want := len(o.Get(Moore, r)), side*side-1; got != want {
			t.Fatalf("moore r=%d: got %d offsets, want %d", r, got, want)
		}
		if got, want := len(o.Get(VonNeumann, r)), 2*r*(r+1); got != want {
			t.Fatalf("von neumann r=%d: got %d offsets, want %d", r, got, want)
		}
		for _, off := range o.Get(VonNeumann, r) {
			if off.DR == 0 && off.DC == 0 {
				t.Fatalf("von neumann r=%d contains the center", r)
			}
			if abs(off.DR)+abs(off.DC) > r {
				t.Fatalf("von neumann r=%d offset %+v outside the manhattan ball", r, off)
			}
		}
	}
	if o.Get(Moore, 0) != nil || o.Get(Moore, MaxRange+1) != nil {
		t.Fatal("ranges outside 1..MaxRange must return nil")
	}
}

func TestMooreRangeOneOrder(t *testing.T) {
	want := []Offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	got := NewOffsets().Get(Moore, 1)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("offset %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCountWrapsAtCornersAndEdges(t *testing.T) {
	const n = 6
	c := NewCounter(nil)
	cases := []struct {
		name     string
		row, col int
	}{
		{"top-left", 0, 0},
		{"top-right", 0, n - 1},
		{"bottom-left", n - 1, 0},
		{"bottom-right", n - 1, n - 1},
		{"top", 0, 3},
		{"bottom", n - 1, 2},
		{"left", 2, 0},
		{"right", 4, n - 1},
	}
	for _, tc := range cases {
		b := core.NewBoard(n, n)
		for _, off := range c.Offsets().Get(Moore, 1) {
			r := ((tc.row+off.DR)%n + n) % n
			col := ((tc.col+off.DC)%n + n) % n
			b.Cells()[b.Index(r, col)] = 1
		}
		if got := c.Count(b, Moore, tc.row, tc.col, 0); got != 8 {
			t.Fatalf("%s: got %d wrapped neighbors, want 8", tc.name, got)
		}
		if got := c.Count(b, VonNeumann, tc.row, tc.col, 0); got != 4 {
			t.Fatalf("%s: got %d wrapped von neumann neighbors, want 4", tc.name, got)
		}
	}
}

func TestCountBitmask(t *testing.T) {
	b := core.NewBoard(5, 5)
	b.Set(1, 2, 1)
	b.Set(2, 1, 3)
	b.Set(2, 3, 2)
	b.Set(3, 2, 5)
	c := NewCounter(nil)

	if got := c.Count(b, VonNeumann, 2, 2, 0); got != 1 {
		t.Fatalf("exact-state count: got %d, want 1", got)
	}
	if got := c.Count(b, VonNeumann, 2, 2, 1); got != 3 {
		t.Fatalf("plane-1 count: got %d, want 3", got)
	}
	if got := c.Count(b, VonNeumann, 2, 2, 2); got != 2 {
		t.Fatalf("plane-2 count: got %d, want 2", got)
	}
}

func TestCountExtended(t *testing.T) {
	b := core.NewBoard(20, 20)
	b.Set(10, 13, 2)
	b.Set(13, 10, 3)
	b.Set(12, 12, 2)
	b.Set(10, 10, 2)
	c := NewCounter(nil)

	if got := c.CountExtended(b, Moore, 10, 10, NewStateSet(2, 3), 3); got != 3 {
		t.Fatalf("moore r=3: got %d, want 3", got)
	}
	if got := c.CountExtended(b, VonNeumann, 10, 10, NewStateSet(2, 3), 3); got != 2 {
		t.Fatalf("von neumann r=3: got %d, want 2", got)
	}
	if got := c.CountExtended(b, Moore, 10, 10, NewStateSet(3), 2); got != 0 {
		t.Fatalf("moore r=2 state 3: got %d, want 0", got)
	}
}

func TestCountWeightedNegative(t *testing.T) {
	b := core.NewBoard(3, 3)
	b.Set(0, 1, 1)
	b.Set(1, 1, 1)
	b.Set(2, 2, 1)
	b.Set(1, 0, 2)

	var w Weights
	w[NN] = 5
	w[ME] = -3
	w[SE] = -7
	w[WW] = 100
	got := NewCounter(nil).CountWeighted(b, 1, 1, w)
	if got != -5 {
		t.Fatalf("got weighted sum %d, want -5", got)
	}
}

func TestConfigurationOrder(t *testing.T) {
	b := core.NewBoard(4, 4)
	b.Set(0, 0, 1)
	b.Set(3, 0, 2)
	b.Set(0, 1, 3)
	b.Set(1, 0, 4)
	b.Set(0, 3, 5)

	got := NewCounter(nil).Configuration(b, 0, 0)
	want := [5]uint8{1, 2, 3, 4, 5}
	if got != want {
		t.Fatalf("got configuration %v, want %v", got, want)
	}
}

func TestParseDirection(t *testing.T) {
	for i, tag := range directionTags {
		d, ok := ParseDirection(tag)
		if !ok || d != Direction(i) {
			t.Fatalf("ParseDirection(%q) = %v, %v", tag, d, ok)
		}
	}
	if _, ok := ParseDirection("XX"); ok {
		t.Fatal("unknown tag must not parse")
	}
}
