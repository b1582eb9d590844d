package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/patterndb/pkg/pancake"
	"github.com/matzehuels/patterndb/pkg/pdb"
	"github.com/matzehuels/patterndb/pkg/render/spacedot"
)

// vizOpts holds the command-line flags of the viz command.
type vizOpts struct {
	goal     string
	pattern  string
	variant  string
	output   string
	maxNodes int
	costs    bool
}

func newVizCmd() *cobra.Command {
	opts := vizOpts{maxNodes: spacedot.DefaultMaxNodes}

	cmd := &cobra.Command{
		Use:   "viz",
		Short: "Render a small abstract state space",
		Long: `Enumerate the abstract space of a goal under a pattern and render it
as a node-link diagram. The output format follows the file extension:
.dot writes Graphviz source, .svg renders it.

Address spaces grow factorially; the command refuses spaces above
--max-nodes. This is a debugging aid for toy patterns.

Example:
  patterndb viz --goal "1 2 3 4" --pattern "--**" --costs -o space.svg`,
		RunE: func(c *cobra.Command, args []string) error {
			return runViz(c.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.goal, "goal", "g", "", "explicit goal state, a blank-separated permutation of 1..N")
	cmd.Flags().StringVarP(&opts.pattern, "pattern", "p", "", "pattern of the rendered space")
	cmd.Flags().StringVarP(&opts.variant, "variant", "r", "unit", "cost variant: unit or heavy-cost")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.dot or .svg)")
	cmd.Flags().IntVar(&opts.maxNodes, "max-nodes", opts.maxNodes, "refuse spaces above this many states")
	cmd.Flags().BoolVar(&opts.costs, "costs", false, "annotate edges with operator costs")

	return cmd
}

func runViz(ctx context.Context, opts vizOpts) error {
	logger := loggerFromContext(ctx)

	if opts.goal == "" || opts.pattern == "" || opts.output == "" {
		return fmt.Errorf("please provide --goal, --pattern and --output")
	}
	goal, err := parsePerm(opts.goal)
	if err != nil {
		return fmt.Errorf("--goal: %w", err)
	}
	if err := checkPattern(goal, opts.pattern, "pattern"); err != nil {
		return err
	}
	variant, err := pancake.ParseVariant(opts.variant)
	if err != nil {
		return err
	}

	puzzleOpts := []pancake.Option{pancake.WithVariant(variant)}
	if variant == pancake.Heavy {
		puzzleOpts = append(puzzleOpts,
			pancake.WithDefaultCost(pancake.DefaultCost(goal, opts.pattern)))
	}
	puzzle := pancake.New(len(goal), puzzleOpts...)

	dot, err := spacedot.ToDOT(puzzle, goal, opts.pattern,
		spacedot.Options{MaxNodes: opts.maxNodes, Costs: opts.costs})
	if err != nil {
		return err
	}

	var data []byte
	switch {
	case strings.HasSuffix(opts.output, ".svg"):
		if data, err = spacedot.RenderSVG(ctx, dot); err != nil {
			return err
		}
	case strings.HasSuffix(opts.output, ".dot"):
		data = []byte(dot)
	default:
		return fmt.Errorf("unsupported output format %q (use .dot or .svg)", opts.output)
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	logger.Info("rendered abstract space",
		"output", opts.output, "space", pdb.AddressSpace(opts.pattern))
	return nil
}
