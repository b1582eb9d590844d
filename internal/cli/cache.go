package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/patterndb/pkg/cache"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local artifact cache",
		Long: `Manage the cache of generated database artifacts consulted by
"gen --cache". Entries are keyed by the build signature, so clearing
the cache only costs regeneration time.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		RunE: func(c *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			fmt.Println(dir)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached artifact",
		RunE: func(c *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			store, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Clear(); err != nil {
				return err
			}
			loggerFromContext(c.Context()).Info("artifact cache cleared", "dir", dir)
			return nil
		},
	})

	return cmd
}
