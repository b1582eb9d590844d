package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/patterndb/pkg/cache"
	"github.com/matzehuels/patterndb/pkg/history"
	"github.com/matzehuels/patterndb/pkg/pancake"
	"github.com/matzehuels/patterndb/pkg/pdb"
)

// genOpts holds the command-line flags of the gen command.
type genOpts struct {
	file     string // output database path
	goal     string // blank-separated goal permutation
	ppattern string // pattern keying the stored values
	cpattern string // pattern of the search space, ppattern when empty
	variant  string // pancake cost variant
	noDoctor bool   // skip the post-build verification
	manifest string // TOML manifest with several builds
	useCache bool   // consult the local artifact cache
	redis    string // redis address for a shared artifact cache
	jsonl    string // JSON-lines build history path
	mongoURI string // MongoDB build history URI
}

func newGenCmd() *cobra.Command {
	var opts genOpts

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a pattern database and write it to a file",
		Long: `Generate a pattern database by backward brute-force search over the
abstract space induced by the c-pattern, keyed by the p-pattern.

Examples:
  patterndb gen --file pancake-8.pdb --goal "1 2 3 4 5 6 7 8" \
      --ppattern "--****--" --variant unit
  patterndb gen --manifest builds.toml --cache`,
		RunE: func(c *cobra.Command, args []string) error {
			return runGen(c.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "pattern database filename")
	cmd.Flags().StringVarP(&opts.goal, "goal", "g", "", "explicit goal state, a blank-separated permutation of 1..N")
	cmd.Flags().StringVarP(&opts.ppattern, "ppattern", "p", "", "pattern masking the stored values ('-' preserves, '*' abstracts)")
	cmd.Flags().StringVarP(&opts.cpattern, "cpattern", "c", "", "pattern of the traversed space (defaults to --ppattern)")
	cmd.Flags().StringVarP(&opts.variant, "variant", "r", "unit", "cost variant: unit or heavy-cost")
	cmd.Flags().BoolVarP(&opts.noDoctor, "no-doctor", "D", false, "disable the post-build verification")
	cmd.Flags().StringVar(&opts.manifest, "manifest", "", "TOML manifest describing several builds")
	cmd.Flags().BoolVar(&opts.useCache, "cache", false, "reuse identical builds from the local artifact cache")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "share the artifact cache through this redis address")
	cmd.Flags().StringVar(&opts.jsonl, "history", "", "append build records to this JSON-lines file")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo", "", "append build records to MongoDB at this URI")

	return cmd
}

func runGen(ctx context.Context, opts genOpts) error {
	store, err := openCache(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	sink, err := openHistory(ctx, opts)
	if err != nil {
		return err
	}
	if sink != nil {
		defer sink.Close(ctx)
	}

	specs, err := buildSpecs(opts)
	if err != nil {
		return err
	}
	for _, spec := range specs {
		if err := runBuild(ctx, spec, store, sink); err != nil {
			return err
		}
	}
	return nil
}

// buildSpecs resolves either the --manifest file or the single build
// described by the flags.
func buildSpecs(opts genOpts) ([]buildSpec, error) {
	if opts.manifest != "" {
		return loadManifest(opts.manifest)
	}

	if opts.file == "" {
		return nil, fmt.Errorf("please provide a filename to store the database (--file)")
	}
	if opts.goal == "" {
		return nil, fmt.Errorf("please provide an explicit goal state (--goal)")
	}
	if opts.ppattern == "" {
		return nil, fmt.Errorf("please provide a pattern to generate the database (--ppattern)")
	}
	return []buildSpec{{
		File:     opts.file,
		Goal:     opts.goal,
		PPattern: opts.ppattern,
		CPattern: opts.cpattern,
		Variant:  opts.variant,
		NoDoctor: opts.noDoctor,
	}}, nil
}

func openCache(ctx context.Context, opts genOpts) (cache.Cache, error) {
	switch {
	case opts.redis != "":
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redis})
	case opts.useCache:
		dir, err := cacheDir()
		if err != nil {
			return nil, err
		}
		return cache.NewFileCache(dir)
	}
	return cache.NewNullCache(), nil
}

func openHistory(ctx context.Context, opts genOpts) (history.Sink, error) {
	switch {
	case opts.mongoURI != "":
		return history.NewMongoSink(ctx, opts.mongoURI, "patterndb", "builds")
	case opts.jsonl != "":
		return history.NewFileSink(opts.jsonl)
	}
	return nil, nil
}

// runBuild generates, verifies and writes one database.
func runBuild(ctx context.Context, spec buildSpec, store cache.Cache, sink history.Sink) error {
	logger := loggerFromContext(ctx)

	goal, err := parsePerm(spec.Goal)
	if err != nil {
		return fmt.Errorf("--goal: %w", err)
	}
	if err := checkPattern(goal, spec.PPattern, "p-pattern"); err != nil {
		return err
	}
	cpattern := spec.CPattern
	if cpattern == "" {
		cpattern = spec.PPattern
	}
	if err := checkPattern(goal, cpattern, "c-pattern"); err != nil {
		return err
	}
	variant, err := pancake.ParseVariant(spec.Variant)
	if err != nil {
		return err
	}

	// The default cost is derived from the c-pattern: that is the
	// pattern the search abstracts states with.
	puzzleOpts := []pancake.Option{pancake.WithVariant(variant)}
	if variant == pancake.Heavy {
		puzzleOpts = append(puzzleOpts,
			pancake.WithDefaultCost(pancake.DefaultCost(goal, cpattern)))
	}
	puzzle := pancake.New(len(goal), puzzleOpts...)

	key := cache.BuildKey(pdb.Max.String(), goal, spec.PPattern, cpattern, variant.String())
	if data, hit, err := store.Get(ctx, key); err != nil {
		logger.Warn("artifact cache unavailable", "err", err)
	} else if hit {
		// Write beside the target and rename into place, so a failed
		// write leaves no partial database behind.
		tmp := filepath.Join(filepath.Dir(spec.File), "."+filepath.Base(spec.File)+".cache.tmp")
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			os.Remove(tmp)
			return fmt.Errorf("write cached artifact: %w", err)
		}
		if err := os.Rename(tmp, spec.File); err != nil {
			os.Remove(tmp)
			return fmt.Errorf("write cached artifact: %w", err)
		}
		logger.Info("materialized from artifact cache", "file", spec.File)
		return nil
	}

	// Progress is measured against the traversed space: the c-pattern
	// decides how many expansions a full run takes.
	watch := newStopwatch(logger)
	searchSpace := pdb.AddressSpace(cpattern)
	progress := newProgressSink(ctx, searchSpace)
	gen, err := pdb.NewGenerator(pdb.Max, puzzle, goal, spec.PPattern, cpattern,
		pdb.WithLogger(logger),
		pdb.WithProgress(progressStrideFor(searchSpace), progress.send))
	if err != nil {
		return err
	}
	if err := progress.run(gen.Generate); err != nil {
		return err
	}

	doctor := "skipped"
	if !spec.NoDoctor {
		if err := gen.Doctor(); err != nil {
			logger.Error("doctor verdict", "err", err,
				"expansions", gen.Expansions(), "space", gen.PDB().Capacity())
			return fmt.Errorf("doctor: %w", err)
		}
		doctor = "ok"
	}

	out := gen.PDB()
	if err := pdb.Write(out, spec.File); err != nil {
		return err
	}
	watch.done(fmt.Sprintf("Generated %s", spec.File))

	if data, err := os.ReadFile(spec.File); err == nil {
		if err := store.Set(ctx, key, data); err != nil {
			logger.Warn("artifact cache write failed", "err", err)
		}
	}

	if sink != nil {
		record := history.Record{
			Time:         time.Now().UTC(),
			File:         spec.File,
			Mode:         out.Mode().String(),
			Goal:         goal,
			PPattern:     out.PPattern(),
			CPattern:     out.CPattern(),
			Variant:      variant.String(),
			AddressSpace: out.Capacity(),
			Expansions:   gen.Expansions(),
			ElapsedMS:    gen.Elapsed().Milliseconds(),
			Doctor:       doctor,
		}
		if err := sink.Append(ctx, record); err != nil {
			logger.Warn("history append failed", "err", err)
		}
	}

	s := newSummary("Pattern database")
	s.add("file", spec.File)
	s.add("mode", out.Mode().String())
	s.add("goal", fmtPerm(goal))
	s.add("p-pattern", out.PPattern())
	s.add("c-pattern", out.CPattern())
	if variant == pancake.Heavy {
		s.addf("variant", "%s (default cost %d)", variant, puzzle.DefaultCost())
	} else {
		s.add("variant", variant.String())
	}
	s.addf("address space", "%d", out.Capacity())
	s.addf("expansions", "%d", gen.Expansions())
	s.add("generation", gen.Elapsed().Round(time.Millisecond).String())
	if doctor == "ok" {
		s.add("doctor", styleSuccess.Render("ok"))
	} else {
		s.add("doctor", styleWarning.Render("unverified"))
	}
	fmt.Println(s)
	return nil
}

// cacheDir returns the artifact cache root under the user cache
// directory.
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "patterndb"), nil
}
