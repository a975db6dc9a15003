package batch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/signadot/xmlfmt/debug"
)

// Watch calls fn for every file under root matching exts that is written
// or created, until ctx is done. New directories are watched as they
// appear. fn is called from a single goroutine; its errors are for the
// caller to report.
func Watch(ctx context.Context, root string, exts []string, fn func(context.Context, string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := watchTree(w, root); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if debug.Batch() {
				debug.Logf("watch: %s\n", ev)
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if err := watchTree(w, ev.Name); err == nil && isDir(ev.Name) {
					continue
				}
			}
			if strings.HasPrefix(filepath.Base(ev.Name), ".") || !Match(ev.Name, exts) {
				continue
			}
			fn(ctx, ev.Name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// watchTree adds path and the directories below it, skipping hidden ones.
// Paths which are not directories are ignored.
func watchTree(w *fsnotify.Watcher, path string) error {
	if !isDir(path) {
		return nil
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != path && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.Add(p)
	})
}

func isDir(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.IsDir()
}
