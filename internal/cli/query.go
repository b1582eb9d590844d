package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/patterndb/pkg/pdb"
)

// queryOpts holds the command-line flags of the query command.
type queryOpts struct {
	file string // one or more database paths in a single argument
	perm string // permutation to evaluate; metadata only when empty
}

func newQueryCmd() *cobra.Command {
	var opts queryOpts

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query one or more pattern databases",
		Long: `Load one or more pattern databases and evaluate a permutation.

Several databases may be given inside one --file argument, separated by
blanks; they must share the goal and the mode, and the result combines
their values accordingly (MAX databases answer the maximum). Without
--perm only the database metadata is printed.

Examples:
  patterndb query --file pancake-8.pdb --perm "8 7 6 5 4 3 2 1"
  patterndb query --file "left.pdb right.pdb" --perm "2 1 4 3 6 5 8 7"`,
		RunE: func(c *cobra.Command, args []string) error {
			return runQuery(c.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "pattern database filename(s), blank-separated")
	cmd.Flags().StringVarP(&opts.perm, "perm", "p", "", "permutation to evaluate")

	return cmd
}

func runQuery(ctx context.Context, opts queryOpts) error {
	logger := loggerFromContext(ctx)

	if opts.file == "" {
		return fmt.Errorf("please provide at least the filename of one database (--file)")
	}
	paths, err := splitFiles(opts.file)
	if err != nil {
		return err
	}

	var perm []int
	if opts.perm != "" {
		if perm, err = parsePerm(opts.perm); err != nil {
			return fmt.Errorf("--perm: %w", err)
		}
	}

	watch := newStopwatch(logger)
	q, err := pdb.Load(paths...)
	if err != nil {
		return err
	}

	var values []pdb.Value
	if perm != nil {
		if values, err = q.Values(perm); err != nil {
			return err
		}
	}

	for i, p := range q.PDBs() {
		s := newSummary(paths[i])
		s.add("mode", p.Mode().String())
		s.add("goal", fmtPerm(p.Goal()))
		s.add("p-pattern", p.PPattern())
		s.add("c-pattern", p.CPattern())
		s.addf("address space", "%d", p.Capacity())
		if values != nil {
			s.addf("value", "%d", values[i])
		}
		fmt.Println(s)
	}

	if perm != nil {
		combined, err := q.Evaluate(perm)
		if errors.Is(err, pdb.ErrAddNotImplemented) {
			return fmt.Errorf("value (ADD): %w", err)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n",
			styleTitle.Render(fmt.Sprintf("Value (%s):", q.Mode())),
			styleNumber.Render(fmt.Sprintf("%d", combined)))
	}

	watch.done("Query finished")
	return nil
}
