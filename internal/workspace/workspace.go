// Package workspace answers questions about the directory being
// initialized. Every function is total: filesystem errors of any kind,
// including a missing directory, map to false or an empty result so
// callers never need an error branch for a simple inspection.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const gitMetadataDir = ".git"

func HasGitMetadata(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, gitMetadataDir))
	if err != nil {
		return false
	}

	return info.IsDir()
}

func HasFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}

	return len(entries) > 0
}

func DefaultRepoName(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	return filepath.Base(filepath.Clean(abs))
}

// ListIgnorableEntries returns the directory entries a user might want in
// .gitignore, excluding git metadata and any existing ignore file.
func ListIgnorableEntries(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name())
		if name == "" || name == gitMetadataDir || name == ".gitignore" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
