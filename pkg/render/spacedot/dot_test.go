package spacedot

import (
	"strings"
	"testing"

	"github.com/matzehuels/patterndb/pkg/pancake"
	"github.com/matzehuels/patterndb/pkg/pdb"
)

func TestToDOTFullSpace(t *testing.T) {
	dot, err := ToDOT(pancake.New(3), pdb.Identity(3), "---", Options{Costs: true})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}

	// All 6 states of the 3-pancake are reachable.
	if got := strings.Count(dot, "[label="); got < 6 {
		t.Errorf("%d labelled nodes, want at least 6", got)
	}
	if !strings.Contains(dot, "graph space {") {
		t.Error("missing graph header")
	}
	if !strings.Contains(dot, "--") {
		t.Error("missing undirected edges")
	}
	if !strings.Contains(dot, "fillcolor=lightgrey") {
		t.Error("goal node not highlighted")
	}
}

func TestToDOTAbstractedLabels(t *testing.T) {
	dot, err := ToDOT(pancake.New(3), pdb.Identity(3), "-**", Options{})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}
	if !strings.Contains(dot, "*") {
		t.Error("abstracted positions should render as '*'")
	}
}

func TestToDOTNodeCap(t *testing.T) {
	_, err := ToDOT(pancake.New(8), pdb.Identity(8), "--------", Options{MaxNodes: 100})
	if err == nil {
		t.Fatal("a 40320-state space must exceed a 100 node cap")
	}
}
