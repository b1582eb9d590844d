package pancake

import (
	"testing"

	"github.com/matzehuels/patterndb/pkg/pdb"
)

func TestPredecessorsUnit(t *testing.T) {
	p := New(4)
	edges := p.Predecessors([]int{1, 2, 3, 4}, nil)
	if len(edges) != 3 {
		t.Fatalf("got %d predecessors, want 3", len(edges))
	}

	want := [][]int{
		{2, 1, 3, 4},
		{3, 2, 1, 4},
		{4, 3, 2, 1},
	}
	for i, e := range edges {
		if e.Cost != 1 {
			t.Errorf("flip(%d) cost = %d, want 1", i+1, e.Cost)
		}
		for j := range want[i] {
			if e.Perm[j] != want[i][j] {
				t.Errorf("flip(%d) = %v, want %v", i+1, e.Perm, want[i])
				break
			}
		}
	}
}

func TestPredecessorsDoNotAliasInput(t *testing.T) {
	p := New(3)
	perm := []int{3, 1, 2}
	edges := p.Predecessors(perm, nil)
	edges[0].Perm[0] = 99
	if perm[0] != 3 {
		t.Error("children must not alias the expanded permutation")
	}
}

func TestHeavyCosts(t *testing.T) {
	// For [2 1 5 4 3] the flip costs are the discs below the spatula,
	// with the full flip charged N+1: [5 4 3 6] for k = 1..4.
	p := New(5, WithVariant(Heavy))
	edges := p.Predecessors([]int{2, 1, 5, 4, 3}, nil)

	want := []pdb.Value{5, 4, 3, 6}
	if len(edges) != len(want) {
		t.Fatalf("got %d predecessors, want %d", len(edges), len(want))
	}
	for i, e := range edges {
		if e.Cost != want[i] {
			t.Errorf("flip(%d) cost = %d, want %d", i+1, e.Cost, want[i])
		}
	}
}

func TestHeavyCostAbstracted(t *testing.T) {
	// An abstracted disc below the spatula charges the default cost.
	p := New(4, WithVariant(Heavy), WithDefaultCost(2))
	edges := p.Predecessors([]int{1, pdb.NonPat, pdb.NonPat, 4}, nil)

	want := []pdb.Value{2, 4, 5} // flip(1): NonPat below; flip(2): disc 4; flip(3): N+1
	for i, e := range edges {
		if e.Cost != want[i] {
			t.Errorf("flip(%d) cost = %d, want %d", i+1, e.Cost, want[i])
		}
	}
}

func TestDefaultCost(t *testing.T) {
	goal := []int{1, 2, 3, 4}
	cases := []struct {
		pattern string
		want    pdb.Value
	}{
		{"-**-", 2},  // abstracted symbols 2, 3
		{"*---", 1},  // abstracted symbol 1
		{"****", 1},  // everything abstracted: minimum of the goal
		{"----", 255}, // nothing abstracted: never consulted
	}
	for _, c := range cases {
		if got := DefaultCost(goal, c.pattern); got != c.want {
			t.Errorf("DefaultCost(%q) = %d, want %d", c.pattern, got, c.want)
		}
	}
}

func TestParseVariant(t *testing.T) {
	for s, want := range map[string]Variant{
		"unit":       Unit,
		"Unit":       Unit,
		"heavy-cost": Heavy,
		"HEAVY-COST": Heavy,
	} {
		got, err := ParseVariant(s)
		if err != nil || got != want {
			t.Errorf("ParseVariant(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
	if _, err := ParseVariant("light"); err == nil {
		t.Error("ParseVariant(light) should fail")
	}
}
