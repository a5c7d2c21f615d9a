package core

import (
	"slices"
	"testing"
	"time"
)

func TestWrapCornersAndEdges(t *testing.T) {
	b := NewBoard(7, 5)
	cases := []struct {
		row, col         int
		wantRow, wantCol int
	}{
		{-1, -1, 6, 4},
		{-1, 5, 6, 0},
		{7, -1, 0, 4},
		{7, 5, 0, 0},
		{-1, 2, 6, 2},
		{7, 3, 0, 3},
		{3, -1, 3, 4},
		{4, 5, 4, 0},
		{-15, 12, 6, 2},
	}
	for _, tc := range cases {
		r, c := b.Wrap(tc.row, tc.col)
		if r != tc.wantRow || c != tc.wantCol {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.row, tc.col, r, c, tc.wantRow, tc.wantCol)
		}
	}

	b.Set(0, 0, 3)
	if got := b.At(7, 5); got != 3 {
		t.Fatalf("At(7,5) = %d, want the value stored at (0,0)", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(4, 4)
	b.Set(1, 2, 1)
	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("clone must equal the source")
	}
	c.Set(1, 2, 0)
	if b.At(1, 2) != 1 {
		t.Fatal("mutating the clone changed the source")
	}
	if b.Equal(c) {
		t.Fatal("boards with different cells must not be equal")
	}
	if b.Equal(NewBoard(4, 5)) {
		t.Fatal("boards with different sizes must not be equal")
	}
}

func TestRandomizeDeterministicAndInRange(t *testing.T) {
	a := NewBoard(16, 16)
	b := NewBoard(16, 16)
	a.Randomize(NewRNG(7), 5)
	b.Randomize(NewRNG(7), 5)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed must produce the same board")
	}
	for i, v := range a.Cells() {
		if v >= 5 {
			t.Fatalf("cell %d = %d, want < 5", i, v)
		}
	}
	a.Clear()
	for _, v := range a.Cells() {
		if v != 0 {
			t.Fatal("Clear must zero every cell")
		}
	}
}

func TestFixedStepDelay(t *testing.T) {
	fs := NewFixedStep(60)
	fs.SetDelay(100 * time.Millisecond)
	start := time.Unix(0, 0)
	if fs.ShouldStepAt(start) {
		t.Fatal("a longer delay must not step on the first poll")
	}
	if fs.ShouldStepAt(start.Add(50 * time.Millisecond)) {
		t.Fatal("should not step before the delay elapses")
	}
	if !fs.ShouldStepAt(start.Add(110 * time.Millisecond)) {
		t.Fatal("should step once the delay elapses")
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("debug"); got.String() != "DEBUG" {
		t.Fatalf("ParseLevel(debug) = %v", got)
	}
	if got := ParseLevel("nonsense"); got.String() != "INFO" {
		t.Fatalf("ParseLevel(nonsense) = %v", got)
	}
}
