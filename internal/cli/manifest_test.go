package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "builds.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
[[build]]
file     = "left.pdb"
goal     = "1 2 3 4 5 6 7 8"
ppattern = "--****--"

[[build]]
file      = "right.pdb"
goal      = "1 2 3 4 5 6 7 8"
ppattern  = "****----"
cpattern  = "**------"
variant   = "heavy-cost"
no_doctor = true
`)

	builds, err := loadManifest(path)
	if err != nil {
		t.Fatalf("loadManifest: %v", err)
	}
	if len(builds) != 2 {
		t.Fatalf("%d builds, want 2", len(builds))
	}

	if builds[0].Variant != "unit" {
		t.Errorf("default variant = %q, want unit", builds[0].Variant)
	}
	if builds[0].CPattern != "" {
		t.Errorf("unset cpattern = %q, want empty", builds[0].CPattern)
	}

	b := builds[1]
	if b.File != "right.pdb" || b.CPattern != "**------" || b.Variant != "heavy-cost" || !b.NoDoctor {
		t.Errorf("second build mangled: %+v", b)
	}
}

func TestLoadManifestValidation(t *testing.T) {
	cases := map[string]string{
		"no builds": ``,
		"missing file": `
[[build]]
goal     = "1 2 3"
ppattern = "---"
`,
		"missing goal": `
[[build]]
file     = "x.pdb"
ppattern = "---"
`,
		"missing ppattern": `
[[build]]
file = "x.pdb"
goal = "1 2 3"
`,
	}
	for name, content := range cases {
		if _, err := loadManifest(writeManifest(t, content)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}

	if _, err := loadManifest(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("absent manifest: expected an error")
	}
}
