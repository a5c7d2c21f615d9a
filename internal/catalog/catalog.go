// Package catalog holds the built-in table of named automata and builds it
// into ready-to-run instances.
package catalog

import (
	"fmt"

	"tomato-ca/internal/automata"
	"tomato-ca/internal/core"
)

// Entry is one named rule in the static table.
type Entry struct {
	Name  string
	Rules string
	// Palette optionally overrides the derived display colours.
	Palette core.Palette
}

// FamilyTable lists the entries of one family in presentation order.
type FamilyTable struct {
	Family  automata.Family
	Entries []Entry
}

// Group is a built family: its automata in table order.
type Group struct {
	Family   automata.Family
	Automata []*automata.Automaton
}

// Catalog is the ordered set of built automata.
type Catalog struct {
	groups []Group
}

// Build parses every entry of tables. It is all-or-nothing: the first entry
// that fails aborts the build and the error wraps its *automata.ParseError.
func Build(tables []FamilyTable) (*Catalog, error) {
	log := core.Logger()
	c := &Catalog{groups: make([]Group, 0, len(tables))}
	for _, ft := range tables {
		g := Group{Family: ft.Family, Automata: make([]*automata.Automaton, 0, len(ft.Entries))}
		for _, e := range ft.Entries {
			var opts []automata.Option
			if e.Palette != nil {
				opts = append(opts, automata.WithColorOverride(e.Palette))
			}
			a, err := automata.New(ft.Family, e.Name, e.Rules, opts...)
			if err != nil {
				return nil, fmt.Errorf("catalog: %s %q: %w", ft.Family, e.Name, err)
			}
			g.Automata = append(g.Automata, a)
		}
		log.Debug("catalog family built", "family", string(ft.Family), "automata", len(g.Automata))
		c.groups = append(c.groups, g)
	}
	return c, nil
}

// Load builds the built-in table.
func Load() (*Catalog, error) {
	return Build(Default)
}

// Len reports the number of families.
func (c *Catalog) Len() int { return len(c.groups) }

// Families returns the built families in order. The slice must not be
// modified.
func (c *Catalog) Families() []Group { return c.groups }

// Family returns the i-th family.
func (c *Catalog) Family(i int) Group { return c.groups[i] }

// Count reports the total number of automata across all families.
func (c *Catalog) Count() int {
	n := 0
	for _, g := range c.groups {
		n += len(g.Automata)
	}
	return n
}

// Lookup finds an automaton by family and display name. It returns the
// family and automaton indices for use with Family.
func (c *Catalog) Lookup(family, name string) (fi, ai int, ok bool) {
	for i, g := range c.groups {
		if string(g.Family) != family {
			continue
		}
		if name == "" && len(g.Automata) > 0 {
			return i, 0, true
		}
		for j, a := range g.Automata {
			if a.Name == name {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
