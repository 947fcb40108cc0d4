package mcp

import (
	"fmt"
	"path/filepath"

	"ginit/internal/credstore"
	"ginit/internal/workspace"
)

// ContextSnapshot is what an agent needs to know before suggesting
// `ginit init`: whether the user is authenticated and whether the
// directory passes the preflight checks.
type ContextSnapshot struct {
	Directory        string   `json:"directory"`
	DefaultRepoName  string   `json:"default_repo_name"`
	Authenticated    bool     `json:"authenticated"`
	HasGitMetadata   bool     `json:"has_git_metadata"`
	HasFiles         bool     `json:"has_files"`
	IgnorableEntries []string `json:"ignorable_entries,omitempty"`
}

func BuildContextSnapshot(dir string, includeEntries bool) (*ContextSnapshot, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve directory: %w", err)
	}

	snapshot := &ContextSnapshot{
		Directory:       abs,
		DefaultRepoName: workspace.DefaultRepoName(abs),
		HasGitMetadata:  workspace.HasGitMetadata(abs),
		HasFiles:        workspace.HasFiles(abs),
	}
	if includeEntries {
		snapshot.IgnorableEntries = workspace.ListIgnorableEntries(abs)
	}

	store, err := credstore.NewDefault()
	if err == nil {
		token, loadErr := store.Load()
		snapshot.Authenticated = loadErr == nil && token != ""
	}

	return snapshot, nil
}
