// Package scaffold writes the optional starter files before the first
// commit.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func WriteReadme(dir, repoName string) error {
	content := fmt.Sprintf("# %s\n", repoName)
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write README.md: %w", err)
	}

	return nil
}

// WriteIgnoreFile writes .gitignore with one entry per line. With no
// entries it still creates the file, empty, as a placeholder.
func WriteIgnoreFile(dir string, entries []string) error {
	content := ""
	if len(entries) > 0 {
		content = strings.Join(entries, "\n") + "\n"
	}

	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write .gitignore: %w", err)
	}

	return nil
}
