package cli

import "testing"

func TestParsePerm(t *testing.T) {
	perm, err := parsePerm("3 1 4 2")
	if err != nil {
		t.Fatalf("parsePerm: %v", err)
	}
	want := []int{3, 1, 4, 2}
	for i := range want {
		if perm[i] != want[i] {
			t.Fatalf("parsePerm = %v, want %v", perm, want)
		}
	}

	// Extra whitespace is tolerated.
	if _, err := parsePerm("  1   2  3 "); err != nil {
		t.Errorf("whitespace: %v", err)
	}

	for _, bad := range []string{
		"",        // empty
		"1 2 2",   // duplicate
		"1 2 4",   // not the set 1..N
		"0 1 2",   // below range
		"1 two 3", // not an integer
	} {
		if _, err := parsePerm(bad); err == nil {
			t.Errorf("parsePerm(%q) should fail", bad)
		}
	}
}

func TestCheckPattern(t *testing.T) {
	goal := []int{1, 2, 3, 4}
	if err := checkPattern(goal, "--**", "p-pattern"); err != nil {
		t.Errorf("valid pattern: %v", err)
	}
	if err := checkPattern(goal, "--*", "p-pattern"); err == nil {
		t.Error("short pattern should fail")
	}
	if err := checkPattern(goal, "--x*", "p-pattern"); err == nil {
		t.Error("bad alphabet should fail")
	}
}

func TestSplitFiles(t *testing.T) {
	files, err := splitFiles("a.pdb  b.pdb")
	if err != nil || len(files) != 2 {
		t.Fatalf("splitFiles = %v, %v", files, err)
	}
	if _, err := splitFiles("   "); err == nil {
		t.Error("blank argument should fail")
	}
}
