// Package bootstrap sequences the init workflow: preflight checks,
// authentication, remote creation, then local wiring. The order matters
// because the steps are irreversible; nothing local is touched until the
// remote repository exists.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ginit/internal/hosting"
	"ginit/internal/prompt"
	"ginit/internal/scaffold"
	"ginit/internal/workspace"
)

var (
	ErrNotAuthenticated   = errors.New("no saved token; run `ginit auth` first")
	ErrAlreadyInitialized = errors.New("this directory is already a git repository")
	ErrNothingToCommit    = errors.New("directory is empty; rerun with --interactive or --force")
)

// TokenStore yields the persisted session token.
type TokenStore interface {
	Load() (string, error)
}

// Host is the slice of the hosting client the workflow uses.
type Host interface {
	AuthenticateToken(token string)
	Verify(ctx context.Context) error
	CreateRepository(ctx context.Context, d hosting.Descriptor) (string, error)
}

// VCS is the slice of the git driver the workflow uses.
type VCS interface {
	Init() error
	StageAll() error
	Commit(message string) error
	AddRemote(name, url string) error
	Push(remote, branch string) error
}

type Options struct {
	Interactive bool
	Force       bool
}

// Result is what the command layer reports on success.
type Result struct {
	Name          string
	CloneURL      string
	Pushed        bool
	CreatedReadme bool
	CreatedIgnore bool
}

type Orchestrator struct {
	Dir    string
	Store  TokenStore
	Host   Host
	Git    VCS
	Prompt prompt.Prompter // required only when Options.Interactive
}

// scaffoldPlan records what the describe step decided. Files are not
// written until the remote create has succeeded, so a NameConflict
// leaves the directory exactly as it was found.
type scaffoldPlan struct {
	readme        bool
	ignore        bool
	ignoreEntries []string
}

func (o *Orchestrator) Run(ctx context.Context, opts Options) (*Result, error) {
	// Preflight: all three checks before any side effect.
	token, err := o.Store.Load()
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	if strings.TrimSpace(token) == "" {
		return nil, ErrNotAuthenticated
	}
	if workspace.HasGitMetadata(o.Dir) {
		return nil, ErrAlreadyInitialized
	}
	if !workspace.HasFiles(o.Dir) && !opts.Interactive && !opts.Force {
		return nil, ErrNothingToCommit
	}

	// Authenticate.
	o.Host.AuthenticateToken(token)
	if err := o.Host.Verify(ctx); err != nil {
		return nil, err
	}

	// Describe the repository to create.
	desc := hosting.Descriptor{Name: workspace.DefaultRepoName(o.Dir)}
	var plan scaffoldPlan
	if opts.Interactive {
		desc, plan, err = o.describe(desc.Name)
		if err != nil {
			return nil, err
		}
	}

	// Create the remote. Failure here aborts with the workspace untouched.
	cloneURL, err := o.Host.CreateRepository(ctx, desc)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Name:          desc.Name,
		CloneURL:      cloneURL,
		CreatedReadme: plan.readme,
		CreatedIgnore: plan.ignore,
	}

	// Wire the local repository. The remote already exists, so any
	// failure past this point is reported without rollback.
	if err := o.wireLocal(cloneURL, desc.Name, plan, result); err != nil {
		return nil, fmt.Errorf("remote repository %s was created, but local setup failed (remove it manually if unwanted): %w", cloneURL, err)
	}

	return result, nil
}

func (o *Orchestrator) describe(defaultName string) (hosting.Descriptor, scaffoldPlan, error) {
	var plan scaffoldPlan

	details, err := o.Prompt.RepoDetails(defaultName)
	if err != nil {
		return hosting.Descriptor{}, plan, err
	}

	plan.readme, err = o.Prompt.ConfirmReadme()
	if err != nil {
		return hosting.Descriptor{}, plan, err
	}

	plan.ignore, err = o.Prompt.ConfirmIgnore()
	if err != nil {
		return hosting.Descriptor{}, plan, err
	}
	if plan.ignore {
		candidates := workspace.ListIgnorableEntries(o.Dir)
		if len(candidates) > 0 {
			plan.ignoreEntries, err = o.Prompt.SelectIgnoreEntries(candidates)
			if err != nil {
				return hosting.Descriptor{}, plan, err
			}
		}
	}

	desc := hosting.Descriptor{
		Name:        details.Name,
		Description: details.Description,
		Private:     details.Private,
	}

	return desc, plan, nil
}

func (o *Orchestrator) wireLocal(cloneURL, repoName string, plan scaffoldPlan, result *Result) error {
	if plan.readme {
		if err := scaffold.WriteReadme(o.Dir, repoName); err != nil {
			return err
		}
	}
	if plan.ignore {
		if err := scaffold.WriteIgnoreFile(o.Dir, plan.ignoreEntries); err != nil {
			return err
		}
	}

	// Counted before init so the fresh .git directory is not mistaken
	// for content.
	hasFiles := workspace.HasFiles(o.Dir)

	if err := o.Git.Init(); err != nil {
		return err
	}

	if !hasFiles {
		// Empty even after scaffolding: register the remote and stop,
		// there is nothing to push.
		return o.Git.AddRemote("origin", cloneURL)
	}

	if err := o.Git.StageAll(); err != nil {
		return err
	}
	if err := o.Git.Commit("Initial commit"); err != nil {
		return err
	}
	if err := o.Git.AddRemote("origin", cloneURL); err != nil {
		return err
	}
	if err := o.Git.Push("origin", "master"); err != nil {
		return err
	}
	result.Pushed = true

	return nil
}
