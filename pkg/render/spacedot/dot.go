package spacedot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/patterndb/pkg/pdb"
)

// DefaultMaxNodes bounds the number of abstract states rendered when
// Options.MaxNodes is zero.
const DefaultMaxNodes = 512

// Options configures the rendering.
type Options struct {
	// MaxNodes caps the number of abstract states; DefaultMaxNodes when 0.
	MaxNodes int

	// Costs annotates every edge with its operator cost.
	Costs bool
}

// ToDOT enumerates the abstract space of the goal under the pattern and
// returns it in Graphviz DOT format. The goal node is highlighted. It
// fails when the address space exceeds the node cap.
func ToDOT(domain pdb.Domain, goal []int, pattern string, opts Options) (string, error) {
	ranker, err := pdb.NewRanker(goal, pattern)
	if err != nil {
		return "", err
	}

	limit := opts.MaxNodes
	if limit <= 0 {
		limit = DefaultMaxNodes
	}
	if space := ranker.Capacity(); space > pdb.Offset(limit) {
		return "", fmt.Errorf("spacedot: address space %d exceeds the %d node cap", space, limit)
	}

	// Breadth-first enumeration from the abstract goal, deduplicated by
	// rank exactly like the generator's closed table.
	agoal := ranker.Mask(goal)
	goalRank, err := ranker.Rank(agoal)
	if err != nil {
		return "", err
	}

	frontier := [][]int{agoal}
	states := map[pdb.Offset][]int{goalRank: agoal}
	type arc struct {
		from, to pdb.Offset
		cost     pdb.Value
	}
	seen := map[[2]pdb.Offset]bool{}
	var arcs []arc

	var edges []pdb.Edge
	for len(frontier) > 0 {
		perm := frontier[0]
		frontier = frontier[1:]
		from, err := ranker.Rank(perm)
		if err != nil {
			return "", err
		}

		edges = domain.Predecessors(perm, edges[:0])
		for _, e := range edges {
			to, err := ranker.Rank(ranker.Mask(e.Perm))
			if err != nil {
				return "", err
			}
			if _, ok := states[to]; !ok {
				child := ranker.Mask(e.Perm)
				states[to] = child
				frontier = append(frontier, child)
			}

			// Operators are involutory, so each arc shows up from both
			// ends; keep one undirected edge per state pair.
			key := [2]pdb.Offset{min(from, to), max(from, to)}
			if from == to || seen[key] {
				continue
			}
			seen[key] = true
			arcs = append(arcs, arc{from: from, to: to, cost: e.Cost})
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph space {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\"];\n")
	buf.WriteString("\n")

	for rank := pdb.Offset(0); rank < ranker.Capacity(); rank++ {
		perm, ok := states[rank]
		if !ok {
			continue
		}
		attrs := fmt.Sprintf("label=%q", fmtState(perm, rank))
		if rank == goalRank {
			attrs += ", fillcolor=lightgrey, penwidth=2"
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", rank, attrs)
	}

	buf.WriteString("\n")
	for _, a := range arcs {
		if opts.Costs {
			fmt.Fprintf(&buf, "  n%d -- n%d [label=\"%d\"];\n", a.from, a.to, a.cost)
		} else {
			fmt.Fprintf(&buf, "  n%d -- n%d;\n", a.from, a.to)
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// fmtState renders an abstract permutation with '*' for abstracted
// positions, followed by its rank.
func fmtState(perm []int, rank pdb.Offset) string {
	parts := make([]string, len(perm))
	for i, s := range perm {
		if s == pdb.NonPat {
			parts[i] = "*"
		} else {
			parts[i] = fmt.Sprintf("%d", s)
		}
	}
	return fmt.Sprintf("%s\n#%d", strings.Join(parts, " "), rank)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("spacedot: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("spacedot: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("spacedot: render: %w", err)
	}
	return buf.Bytes(), nil
}
