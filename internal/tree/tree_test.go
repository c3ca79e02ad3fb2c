package tree

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
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

func TestFiles_VisitsAllRegularFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "b")
	writeFile(t, filepath.Join(root, "sub", "deep", "c.txt"), "c")

	var got []string
	err := Files(root, func(path string, d fs.DirEntry) error {
		rel, _ := filepath.Rel(root, path)
		got = append(got, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("Files error: %v", err)
	}

	sort.Strings(got)
	want := []string{"a.txt", filepath.Join("sub", "b.txt"), filepath.Join("sub", "deep", "c.txt")}
	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFiles_SkipsDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.txt"), "x")
	writeFile(t, filepath.Join(root, "attachments", "skip.txt"), "x")
	writeFile(t, filepath.Join(root, "attachments", "nested", "skip2.txt"), "x")

	var got []string
	err := Files(root, func(path string, d fs.DirEntry) error {
		got = append(got, filepath.Base(path))
		return nil
	}, filepath.Join(root, "attachments"))
	if err != nil {
		t.Fatalf("Files error: %v", err)
	}

	if len(got) != 1 || got[0] != "keep.txt" {
		t.Errorf("visited %v, want only keep.txt", got)
	}
}

func TestNextFree(t *testing.T) {
	dir := t.TempDir()

	target := filepath.Join(dir, "report.pdf")
	if got := NextFree(target); got != target {
		t.Errorf("NextFree on empty dir = %q, want %q", got, target)
	}

	writeFile(t, target, "x")
	if got := NextFree(target); got != filepath.Join(dir, "report (1).pdf") {
		t.Errorf("NextFree = %q, want report (1).pdf", got)
	}

	writeFile(t, filepath.Join(dir, "report (1).pdf"), "x")
	writeFile(t, filepath.Join(dir, "report (2).pdf"), "x")
	if got := NextFree(target); got != filepath.Join(dir, "report (3).pdf") {
		t.Errorf("NextFree = %q, want report (3).pdf", got)
	}
}

func TestNextFree_NoExtension(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "README")
	writeFile(t, target, "x")
	if got := NextFree(target); got != filepath.Join(dir, "README (1)") {
		t.Errorf("NextFree = %q, want README (1)", got)
	}
}

func TestRemoveIfEmpty(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty")
	if err := os.Mkdir(empty, 0o755); err != nil {
		t.Fatal(err)
	}
	removed, err := RemoveIfEmpty(empty)
	if err != nil || !removed {
		t.Errorf("RemoveIfEmpty(empty) = %v, %v; want true, nil", removed, err)
	}
	if IsDir(empty) {
		t.Error("empty directory still exists after removal")
	}

	full := filepath.Join(dir, "full")
	writeFile(t, filepath.Join(full, "f.txt"), "x")
	removed, err = RemoveIfEmpty(full)
	if err != nil || removed {
		t.Errorf("RemoveIfEmpty(full) = %v, %v; want false, nil", removed, err)
	}
	if !IsDir(full) {
		t.Error("non-empty directory was removed")
	}

	removed, err = RemoveIfEmpty(filepath.Join(dir, "missing"))
	if err != nil || removed {
		t.Errorf("RemoveIfEmpty(missing) = %v, %v; want false, nil", removed, err)
	}
}
