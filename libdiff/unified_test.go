package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type unifiedTest struct {
	from, to string
	opts     []DiffOption
	want     string
}

func TestUnified(t *testing.T) {
	uts := []unifiedTest{
		{from: "a\nb\n", to: "a\nb\n", want: ""},
		{
			from: "x\ny\nz\n",
			to:   "x\nY\nz\n",
			want: "--- a.xml\n+++ b.xml\n@@ -1,3 +1,3 @@\n x\n-y\n+Y\n z\n",
		},
		{
			from: "x\ny\nz\n",
			to:   "x\nY\nz\n",
			opts: []DiffOption{DiffContext(0)},
			want: "--- a.xml\n+++ b.xml\n@@ -2 +2 @@\n-y\n+Y\n",
		},
		{
			from: "x",
			to:   "y",
			want: "--- a.xml\n+++ b.xml\n@@ -1 +1 @@\n-x\n\\ No newline at end of file\n+y\n\\ No newline at end of file\n",
		},
		{
			from: "",
			to:   "a\n",
			want: "--- a.xml\n+++ b.xml\n@@ -0,0 +1 @@\n+a\n",
		},
	}
	for _, ut := range uts {
		got := Unified("a.xml", "b.xml", ut.from, ut.to, ut.opts...)
		if diff := cmp.Diff(ut.want, got); diff != "" {
			t.Errorf("Unified(%q, %q) (-want +got):\n%s", ut.from, ut.to, diff)
		}
	}
}

func TestUnifiedColor(t *testing.T) {
	got := Unified("a", "b", "x\n", "y\n", DiffColor(true))
	if got == Unified("a", "b", "x\n", "y\n") {
		t.Errorf("no color in %q", got)
	}
}

func lines(ops string) []Line {
	res := make([]Line, len(ops))
	for i, c := range ops {
		op := Equal
		switch c {
		case '-':
			op = Delete
		case '+':
			op = Insert
		}
		res[i] = Line{Op: op, Text: string(rune('a' + i))}
	}
	return res
}

func TestHunks(t *testing.T) {
	ls := lines(" -    + ")
	hunks := Hunks(ls, 1)
	if len(hunks) != 2 {
		t.Fatalf("got %d hunks, expected 2", len(hunks))
	}
	var headers []string
	for i := range hunks {
		headers = append(headers, hunks[i].Header())
	}
	if diff := cmp.Diff([]string{"@@ -1,3 +1,2 @@", "@@ -6,2 +5,3 @@"}, headers); diff != "" {
		t.Errorf("headers (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ls[5:], hunks[1].Lines); diff != "" {
		t.Errorf("second hunk (-want +got):\n%s", diff)
	}

	merged := Hunks(ls, 2)
	if len(merged) != 1 {
		t.Fatalf("got %d hunks with context 2, expected 1", len(merged))
	}
	if h := merged[0].Header(); h != "@@ -1,7 +1,7 @@" {
		t.Errorf("merged header %s", h)
	}
	if hs := Hunks(lines("   "), 3); len(hs) != 0 {
		t.Errorf("hunks for equal lines: %v", hs)
	}
}
