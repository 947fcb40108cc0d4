package scaffold

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReadme(t *testing.T) {
	dir := t.TempDir()

	if err := WriteReadme(dir, "myrepo"); err != nil {
		t.Fatalf("WriteReadme returned error: %v", err)
	}

	mustHaveFileWithContents(t, filepath.Join(dir, "README.md"), "# myrepo\n")
}

func TestWriteIgnoreFileJoinsEntries(t *testing.T) {
	dir := t.TempDir()

	if err := WriteIgnoreFile(dir, []string{"node_modules", "dist", ".env"}); err != nil {
		t.Fatalf("WriteIgnoreFile returned error: %v", err)
	}

	mustHaveFileWithContents(t, filepath.Join(dir, ".gitignore"), "node_modules\ndist\n.env\n")
}

func TestWriteIgnoreFileEmptySelection(t *testing.T) {
	dir := t.TempDir()

	if err := WriteIgnoreFile(dir, nil); err != nil {
		t.Fatalf("WriteIgnoreFile returned error: %v", err)
	}

	mustHaveFileWithContents(t, filepath.Join(dir, ".gitignore"), "")
}

func mustHaveFileWithContents(t *testing.T, path, expected string) {
	t.Helper()
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if string(contents) != expected {
		t.Fatalf("unexpected contents for %s: got %q want %q", path, string(contents), expected)
	}
}
