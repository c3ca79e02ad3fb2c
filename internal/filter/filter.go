package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sarscrub/sarscrub/internal/report"
	"github.com/sarscrub/sarscrub/internal/tree"
)

// Options configures one attachment-filter pass.
type Options struct {
	// Root is the export tree to filter. Must exist.
	Root string
	// Match is the identifying string; attachments whose lowercased
	// filename contains it are kept. Compared case-insensitively.
	Match string
	// AttachmentsDir is the holding folder name relative to Root.
	AttachmentsDir string
	// Extensions are the document-like extensions (with leading dot)
	// subject to keep-or-delete filtering. Files with other extensions
	// are left untouched.
	Extensions []string
	// AlwaysDelete are lowercased basenames removed unconditionally.
	AlwaysDelete []string
	// CleanupDirs are paths relative to Root removed after the pass,
	// but only if empty. Best effort.
	CleanupDirs []string
}

// Run walks the export tree and keeps, deletes, or ignores each file per
// the options. Kept attachments are moved into the holding folder with
// collision-safe renaming. Individual file failures are reported and
// skipped; only a missing root or a failed traversal is an error.
func Run(opts Options, rep *report.Reporter) error {
	if !tree.IsDir(opts.Root) {
		return fmt.Errorf("folder %q not found", opts.Root)
	}

	match := strings.ToLower(strings.TrimSpace(opts.Match))
	if match == "" {
		return fmt.Errorf("empty match string")
	}

	exts := make(map[string]bool, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts[strings.ToLower(e)] = true
	}
	alwaysDelete := make(map[string]bool, len(opts.AlwaysDelete))
	for _, n := range opts.AlwaysDelete {
		alwaysDelete[strings.ToLower(n)] = true
	}

	holding := filepath.Join(opts.Root, opts.AttachmentsDir)

	err := tree.Files(opts.Root, func(path string, d fs.DirEntry) error {
		nameLower := strings.ToLower(d.Name())

		if alwaysDelete[nameLower] {
			if err := os.Remove(path); err != nil {
				rep.Warnf("Failed to delete %q: %v", path, err)
			} else {
				rep.Actionf("Deleted: %s", path)
			}
			return nil
		}

		if !exts[filepath.Ext(nameLower)] {
			return nil
		}

		if strings.Contains(nameLower, match) {
			dest, err := safeMove(path, holding)
			if err != nil {
				rep.Warnf("Failed to move %q: %v", path, err)
				return nil
			}
			rep.Actionf("Kept & moved: %s", dest)
			return nil
		}

		if err := os.Remove(path); err != nil {
			rep.Warnf("Failed to delete %q: %v", path, err)
		} else {
			rep.Actionf("Deleted: %s", path)
		}
		return nil
	}, holding)
	if err != nil {
		return fmt.Errorf("walking %s: %w", opts.Root, err)
	}

	for _, rel := range opts.CleanupDirs {
		dir := filepath.Join(opts.Root, filepath.FromSlash(rel))
		removed, err := tree.RemoveIfEmpty(dir)
		if err != nil {
			rep.Warnf("Could not remove %q: %v", dir, err)
			continue
		}
		if removed {
			rep.Actionf("Removed empty folder: %s", dir)
		}
	}

	return nil
}

// safeMove moves src into dstDir, creating the directory on demand and
// appending " (1)", " (2)", ... before the extension when the name is
// already taken. Returns the final destination path.
func safeMove(src, dstDir string) (string, error) {
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dstDir, err)
	}
	dest := tree.NextFree(filepath.Join(dstDir, filepath.Base(src)))
	if err := os.Rename(src, dest); err != nil {
		return "", fmt.Errorf("moving to %s: %w", dest, err)
	}
	return dest, nil
}
