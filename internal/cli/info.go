package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/patterndb/pkg/pdb"
)

func newInfoCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print pattern database metadata",
		Long: `Read the header of one or more pattern databases and print their
metadata without evaluating anything. Prints the same metadata as query
without --perm, but reads each database on its own, so the databases
need not share the goal or the mode.`,
		RunE: func(c *cobra.Command, args []string) error {
			return runInfo(c.Context(), file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "pattern database filename(s), blank-separated")

	return cmd
}

func runInfo(ctx context.Context, file string) error {
	if file == "" {
		return fmt.Errorf("please provide at least the filename of one database (--file)")
	}
	paths, err := splitFiles(file)
	if err != nil {
		return err
	}

	for _, path := range paths {
		p, err := pdb.Read(path)
		if err != nil {
			return err
		}
		s := newSummary(path)
		s.add("mode", p.Mode().String())
		s.add("goal", fmtPerm(p.Goal()))
		s.add("p-pattern", p.PPattern())
		s.add("c-pattern", p.CPattern())
		s.addf("address space", "%d", p.Capacity())
		fmt.Println(s)
	}
	return nil
}
