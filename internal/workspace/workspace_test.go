package workspace

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestHasGitMetadata(t *testing.T) {
	dir := t.TempDir()
	if HasGitMetadata(dir) {
		t.Fatal("HasGitMetadata() = true for a fresh directory")
	}

	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	if !HasGitMetadata(dir) {
		t.Fatal("HasGitMetadata() = false with a .git directory present")
	}
}

func TestHasGitMetadataIgnoresPlainFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: elsewhere"), 0o644); err != nil {
		t.Fatalf("write .git file: %v", err)
	}

	if HasGitMetadata(dir) {
		t.Fatal("HasGitMetadata() = true for a .git regular file")
	}
}

func TestHasGitMetadataMissingDirIsFalse(t *testing.T) {
	if HasGitMetadata(filepath.Join(t.TempDir(), "does-not-exist")) {
		t.Fatal("HasGitMetadata() = true for a missing directory")
	}
}

func TestHasFiles(t *testing.T) {
	dir := t.TempDir()
	if HasFiles(dir) {
		t.Fatal("HasFiles() = true for an empty directory")
	}

	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write app.js: %v", err)
	}
	if !HasFiles(dir) {
		t.Fatal("HasFiles() = false for a non-empty directory")
	}

	if HasFiles(filepath.Join(dir, "missing")) {
		t.Fatal("HasFiles() = true for a missing directory")
	}
}

func TestDefaultRepoName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "myrepo")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if got := DefaultRepoName(dir); got != "myrepo" {
		t.Fatalf("DefaultRepoName() = %q, want %q", got, "myrepo")
	}
}

func TestListIgnorableEntriesExcludesGitArtifacts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"app.js", "node_modules", ".gitignore"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}

	got := ListIgnorableEntries(dir)
	want := []string{"app.js", "node_modules"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ListIgnorableEntries() = %v, want %v", got, want)
	}
}

func TestListIgnorableEntriesMissingDirIsEmpty(t *testing.T) {
	if got := ListIgnorableEntries(filepath.Join(t.TempDir(), "missing")); got != nil {
		t.Fatalf("ListIgnorableEntries() = %v for a missing directory, want nil", got)
	}
}
