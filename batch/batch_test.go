package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/xmlfmt/format"
	"github.com/signadot/xmlfmt/parse"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{"b.xml", "a.XML", "c.txt", "sub/d.svg", "sub/e.xml", ".hidden/f.xml", "sub/.g.xml"} {
		writeFile(t, filepath.Join(root, p), "<a/>")
	}
	got, err := Discover(root, []string{".xml", ".svg"})
	if err != nil {
		t.Fatal(err)
	}
	var rel []string
	for _, p := range got {
		r, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatal(err)
		}
		rel = append(rel, filepath.ToSlash(r))
	}
	want := []string{"a.XML", "b.xml", "sub/.g.xml", "sub/d.svg", "sub/e.xml"}
	if diff := cmp.Diff(want, rel); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	single := filepath.Join(root, "c.txt")
	got, err = Discover(single, []string{".xml"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{single}, got); diff != "" {
		t.Errorf("explicit file (-want +got):\n%s", diff)
	}
	if _, err := Discover(filepath.Join(root, "missing"), nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestRun(t *testing.T) {
	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}
	var inFlight, peak atomic.Int32
	errs := Run(context.Background(), items, 3, func(_ context.Context, i int) error {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		if i%5 == 0 {
			return fmt.Errorf("item %d", i)
		}
		return nil
	})
	if len(errs) != len(items) {
		t.Fatalf("got %d errors for %d items", len(errs), len(items))
	}
	for i, err := range errs {
		switch {
		case i%5 == 0 && (err == nil || err.Error() != fmt.Sprintf("item %d", i)):
			t.Errorf("item %d: got %v", i, err)
		case i%5 != 0 && err != nil:
			t.Errorf("item %d: unexpected %v", i, err)
		}
	}
	if p := peak.Load(); p > 3 {
		t.Errorf("%d calls in flight, limit 3", p)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls atomic.Int32
	errs := Run(ctx, []string{"a", "b"}, 0, func(context.Context, string) error {
		calls.Add(1)
		return nil
	})
	if calls.Load() != 0 {
		t.Errorf("%d calls after cancel", calls.Load())
	}
	for i, err := range errs {
		if !errors.Is(err, context.Canceled) {
			t.Errorf("item %d: got %v", i, err)
		}
	}
}

func TestFormatter(t *testing.T) {
	f := &Formatter{Config: format.DefaultConfig(), EOL: format.CRLF}
	got, err := f.Format([]byte("<a><b/></a>"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<a>\r\n  <b />\r\n</a>\r\n" {
		t.Errorf("got %q", got)
	}

	f.EOL = format.LF
	in := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><a>caf\xe9 &#8364;</a>")
	got, err = f.Format(in)
	if err != nil {
		t.Fatal(err)
	}
	want := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n<a>caf\xe9 &#8364;</a>\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
	again, err := f.Format(got)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != want {
		t.Errorf("not idempotent: %q", again)
	}

	_, err = f.Format([]byte("<a><b></a>"))
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestResultChanged(t *testing.T) {
	r := &Result{Before: []byte("<a/>"), After: []byte("<a />\n")}
	if !r.Changed() {
		t.Errorf("expected changed")
	}
	r.After = r.Before
	if r.Changed() {
		t.Errorf("expected unchanged")
	}
	r.After = nil
	r.Err = errors.New("x")
	if r.Changed() {
		t.Errorf("failed result reported as changed")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.xml")
	changed, err := WriteFile(p, []byte("one"))
	if err != nil || !changed {
		t.Fatalf("new file: changed=%t err=%v", changed, err)
	}
	if err := os.Chmod(p, 0o600); err != nil {
		t.Fatal(err)
	}
	changed, err = WriteFile(p, []byte("one"))
	if err != nil || changed {
		t.Fatalf("same content: changed=%t err=%v", changed, err)
	}
	changed, err = WriteFile(p, []byte("two"))
	if err != nil || !changed {
		t.Fatalf("new content: changed=%t err=%v", changed, err)
	}
	d, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "two" {
		t.Errorf("content %q", d)
	}
	fi, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Errorf("mode %v not kept", fi.Mode().Perm())
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 {
		t.Errorf("temporary files left behind: %v", ents)
	}
}

func TestWatch(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	seen := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, root, []string{".xml"}, func(_ context.Context, p string) {
			seen <- filepath.Base(p)
		})
	}()
	// give the watcher time to register root
	time.Sleep(100 * time.Millisecond)
	writeFile(t, filepath.Join(root, "skip.txt"), "x")
	writeFile(t, filepath.Join(root, "doc.xml"), "<a/>")
	select {
	case name := <-seen:
		if name != "doc.xml" {
			t.Errorf("got event for %s", name)
		}
	case <-ctx.Done():
		t.Fatal("no event for doc.xml")
	}
	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch: %v", err)
	}
}
