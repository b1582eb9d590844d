package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// buildSpec describes one database build, either from the command line
// or from a manifest entry.
type buildSpec struct {
	File     string `toml:"file"`
	Goal     string `toml:"goal"`
	PPattern string `toml:"ppattern"`
	CPattern string `toml:"cpattern"`
	Variant  string `toml:"variant"`
	NoDoctor bool   `toml:"no_doctor"`
}

// manifest is the TOML shape of a batch build file:
//
//	[[build]]
//	file     = "pancake-8.pdb"
//	goal     = "1 2 3 4 5 6 7 8"
//	ppattern = "--****--"
//	variant  = "unit"
type manifest struct {
	Builds []buildSpec `toml:"build"`
}

// loadManifest parses a batch manifest and fills in defaults: variant
// "unit" when absent, c-pattern handled later like on the command line.
func loadManifest(path string) ([]buildSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	if len(m.Builds) == 0 {
		return nil, fmt.Errorf("manifest %s declares no builds", path)
	}

	for i := range m.Builds {
		b := &m.Builds[i]
		if b.File == "" {
			return nil, fmt.Errorf("manifest %s: build %d has no file", path, i+1)
		}
		if b.Goal == "" {
			return nil, fmt.Errorf("manifest %s: build %d has no goal", path, i+1)
		}
		if b.PPattern == "" {
			return nil, fmt.Errorf("manifest %s: build %d has no ppattern", path, i+1)
		}
		if b.Variant == "" {
			b.Variant = "unit"
		}
	}
	return m.Builds, nil
}
