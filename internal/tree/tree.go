package tree

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// WalkFunc is called once per regular file discovered under the root.
type WalkFunc func(path string, d fs.DirEntry) error

// Files walks the tree rooted at root and calls fn for each regular file.
// Directories whose cleaned path appears in skipDirs are not descended into.
// Traversal order is lexical within each directory.
func Files(root string, fn WalkFunc, skipDirs ...string) error {
	skip := make(map[string]bool, len(skipDirs))
	for _, d := range skipDirs {
		skip[filepath.Clean(d)] = true
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skip[filepath.Clean(path)] {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return fn(path, d)
	})
}

// NextFree returns path if nothing exists there, otherwise the first
// "name (1).ext", "name (2).ext", ... variant in the same directory that
// does not exist. Single-process only; there is no guard against a
// concurrent writer claiming the returned name.
func NextFree(path string) string {
	if _, err := os.Lstat(path); err != nil {
		return path
	}
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	name := strings.TrimSuffix(filepath.Base(path), ext)
	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", name, n, ext))
		if _, err := os.Lstat(candidate); err != nil {
			return candidate
		}
	}
}

// IsDir reports whether the path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// RemoveIfEmpty removes the directory only if it exists and contains no
// entries. It reports whether the directory was removed.
func RemoveIfEmpty(path string) (bool, error) {
	if !IsDir(path) {
		return false, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf("reading directory %s: %w", path, err)
	}
	if len(entries) > 0 {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, fmt.Errorf("removing directory %s: %w", path, err)
	}
	return true, nil
}
