package automata

import (
	"slices"
	"testing"

	"tomato-ca/internal/core"
)

func boardWith(rows, cols int, live ...[2]int) *core.Board {
	b := core.NewBoard(rows, cols)
	for _, rc := range live {
		b.Set(rc[0], rc[1], 1)
	}
	return b
}

func expectCells(t *testing.T, b *core.Board, state uint8, want map[[2]int]bool) {
	t.Helper()
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			got := b.At(row, col) == state
			if got != want[[2]int{row, col}] {
				t.Fatalf("cell (%d,%d) in state %d = %v, expected %v", row, col, state, got, want[[2]int{row, col}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	eng := NewEngine()
	life := MustNew(FamilyLife, "Conway's Life", "23/3")
	b := boardWith(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	next, changed := eng.Rewrite(life, b)
	if !changed {
		t.Fatal("blinker must change")
	}
	expectCells(t, next, 1, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})

	next, _ = eng.Rewrite(life, next)
	expectCells(t, next, 1, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})
}

func TestLifeLoneCellDies(t *testing.T) {
	eng := NewEngine()
	life := MustNew(FamilyLife, "Conway's Life", "23/3")

	for _, b := range []*core.Board{
		boardWith(8, 8, [2]int{4, 4}),
		boardWith(8, 8, [2]int{4, 4}, [2]int{4, 5}),
	} {
		next, changed := eng.Rewrite(life, b)
		if !changed {
			t.Fatal("dying cells must report a change")
		}
		if next.At(4, 4) != 0 {
			t.Fatal("a live cell with fewer than two neighbors must die")
		}
	}
}

func TestLifeBirthOnThree(t *testing.T) {
	eng := NewEngine()
	life := MustNew(FamilyLife, "Conway's Life", "23/3")
	b := boardWith(8, 8, [2]int{3, 3}, [2]int{3, 5}, [2]int{5, 4})

	next, _ := eng.Rewrite(life, b)
	if next.At(4, 4) != 1 {
		t.Fatal("a dead cell with exactly three neighbors must be born")
	}
}

func TestLifeBlockIsStable(t *testing.T) {
	eng := NewEngine()
	life := MustNew(FamilyLife, "Conway's Life", "23/3")
	b := boardWith(10, 10, [2]int{4, 4}, [2]int{4, 5}, [2]int{5, 4}, [2]int{5, 5})

	next, changed := eng.Rewrite(life, b)
	if changed {
		t.Fatal("a block must be a fixed point")
	}
	if !next.Equal(b) {
		t.Fatal("a block must rewrite to itself")
	}
}

func TestGenerationsDecay(t *testing.T) {
	eng := NewEngine()
	g := MustNew(FamilyGenerations, "Brian's Brain", "/2/3")

	neighborhoods := [][][2]int{
		nil,
		{{0, 0}, {0, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	}
	for _, live := range neighborhoods {
		b := boardWith(6, 6, live...)
		b.Set(1, 1, 2)
		next, _ := eng.Rewrite(g, b)
		if got := next.At(1, 1); got != 0 {
			t.Fatalf("state 2 of 3 must decay to 0, got %d with %d live neighbors", got, len(live))
		}
	}

	b := boardWith(6, 6, [2]int{2, 2})
	next, _ := eng.Rewrite(g, b)
	if got := next.At(2, 2); got != 2 {
		t.Fatalf("a live cell that does not survive must advance to 2, got %d", got)
	}
}

func TestRewriteDeterministicAndPure(t *testing.T) {
	eng := NewEngine()
	rule := MustNew(FamilyGenerations, "Star Wars", "345/2/4")
	b := core.NewBoard(30, 30)
	b.Randomize(core.NewRNG(3), rule.NumStates)
	before := append([]uint8(nil), b.Cells()...)

	first, c1 := eng.Rewrite(rule, b)
	second, c2 := eng.Rewrite(rule, b)
	if !first.Equal(second) || c1 != c2 {
		t.Fatal("rewriting the same snapshot twice must give identical results")
	}
	if !slices.Equal(before, b.Cells()) {
		t.Fatal("Rewrite must not modify its input board")
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	serial := NewEngine()
	parallel := NewEngine(WithWorkers(4), WithCounter(serial.Counter()))
	rules := []*Automaton{
		MustNew(FamilyGenerations, "Star Wars", "345/2/4"),
		MustNew(FamilyCyclic, "313", "R1/T3/C3/NM"),
		MustNew(FamilyLargerThanLife, "Bosco", "R5,C0,M1,S34..58,B34..45,NM"),
	}
	for _, rule := range rules {
		a := core.NewBoard(37, 41)
		a.Randomize(core.NewRNG(11), rule.NumStates)
		b := a.Clone()
		for i := 0; i < 5; i++ {
			var ca, cb bool
			a, ca = serial.Rewrite(rule, a)
			b, cb = parallel.Rewrite(rule, b)
			if ca != cb || !a.Equal(b) {
				t.Fatalf("%s: generation %d differs between serial and parallel engines", rule.Name, i)
			}
		}
	}
}

func TestQuiescentBoardReportsNoChange(t *testing.T) {
	eng := NewEngine()
	for _, rule := range []*Automaton{
		MustNew(FamilyLife, "Conway's Life", "23/3"),
		MustNew(FamilyGenerations, "Star Wars", "345/2/4"),
		MustNew(FamilyWeightedLife, "Weighted", "NN1,EE1,SS1,WW1,RB2,RS2"),
		MustNew(FamilyRulesTable, "Table", "1,0,0,0,0,0,1,0,0,0,0,0,0,0,0,1,1"),
	} {
		b := core.NewBoard(12, 12)
		next, changed := eng.Rewrite(rule, b)
		if changed || !next.Equal(b) {
			t.Fatalf("%s: an empty board must be a fixed point", rule.Name)
		}
	}
}
