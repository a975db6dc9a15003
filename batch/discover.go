package batch

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Match reports whether path has one of exts. Extensions are compared
// case insensitively and include the leading dot.
func Match(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext != "" && slices.Contains(exts, ext)
}

// Discover returns the documents to format under path. A regular file is
// returned as is whatever its extension. A directory is searched
// recursively for files matching exts, skipping hidden directories. The
// result is in lexical order.
func Discover(path string, exts []string) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return []string{path}, nil
	}
	var res []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && Match(p, exts) {
			res = append(res, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
