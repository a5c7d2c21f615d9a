package catalog

import (
	"errors"
	"strings"
	"testing"

	"tomato-ca/internal/automata"
	"tomato-ca/internal/core"
)

func TestDefaultCatalogBuilds(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("default catalog failed to build: %v", err)
	}
	if c.Len() != len(Default) {
		t.Fatalf("got %d families, want %d", c.Len(), len(Default))
	}
	seen := map[automata.Family]bool{}
	for i, g := range c.Families() {
		if g.Family != Default[i].Family {
			t.Fatalf("family %d is %s, want %s", i, g.Family, Default[i].Family)
		}
		if len(g.Automata) != len(Default[i].Entries) {
			t.Fatalf("%s: got %d automata, want %d", g.Family, len(g.Automata), len(Default[i].Entries))
		}
		for j, a := range g.Automata {
			if a.Name != Default[i].Entries[j].Name {
				t.Fatalf("%s: automaton %d is %q, want %q", g.Family, j, a.Name, Default[i].Entries[j].Name)
			}
			if a.Family() != g.Family {
				t.Fatalf("%s: automaton %q reports family %s", g.Family, a.Name, a.Family())
			}
			if a.NumStates < 2 {
				t.Fatalf("%s: automaton %q has %d states", g.Family, a.Name, a.NumStates)
			}
			if a.ColorOverride != nil && len(a.ColorOverride) != a.NumStates {
				t.Fatalf("%s: automaton %q palette has %d colours for %d states", g.Family, a.Name, len(a.ColorOverride), a.NumStates)
			}
		}
		seen[g.Family] = true
	}
	for _, f := range automata.Families {
		if !seen[f] {
			t.Fatalf("family %s missing from the default catalog", f)
		}
	}
}

func TestBuildIsAllOrNothing(t *testing.T) {
	tables := []FamilyTable{
		{Family: automata.FamilyLife, Entries: []Entry{{Name: "Life", Rules: "23/3"}}},
		{Family: automata.FamilyCyclic, Entries: []Entry{
			{Name: "Good", Rules: "R1/T3/C3/NM"},
			{Name: "Broken", Rules: "R1/T3/C3/NQ"},
		}},
	}
	c, err := Build(tables)
	if c != nil {
		t.Fatal("a failing entry must not yield a partial catalog")
	}
	if !errors.Is(err, automata.ErrBadToken) {
		t.Fatalf("got %v, want a wrapped bad-token error", err)
	}
	var pe *automata.ParseError
	if !errors.As(err, &pe) || pe.Family != automata.FamilyCyclic {
		t.Fatalf("error %v must carry the parse error", err)
	}
	if !strings.Contains(err.Error(), "Broken") {
		t.Fatalf("error %q must name the failing entry", err)
	}
}

func TestBuildRejectsBadPalette(t *testing.T) {
	_, err := Build([]FamilyTable{{
		Family:  automata.FamilyLife,
		Entries: []Entry{{Name: "Life", Rules: "23/3", Palette: core.Palette{{1, 2, 3}}}},
	}})
	if !errors.Is(err, automata.ErrFieldCount) {
		t.Fatalf("got %v, want a palette length error", err)
	}
}

func TestLookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	fi, ai, ok := c.Lookup(string(automata.FamilyGenerations), "Star Wars")
	if !ok {
		t.Fatal("Star Wars must be found")
	}
	if got := c.Family(fi).Automata[ai]; got.Rules != "345/2/4" {
		t.Fatalf("lookup returned %v", got)
	}
	if _, ai, ok := c.Lookup(string(automata.FamilyCyclic), ""); !ok || ai != 0 {
		t.Fatal("an empty name must select the first automaton of the family")
	}
	if _, _, ok := c.Lookup("Nope", ""); ok {
		t.Fatal("unknown family must not be found")
	}
	if c.Count() < c.Len() {
		t.Fatalf("count %d below family count %d", c.Count(), c.Len())
	}
}
