// Package gitx drives the local git toolchain for the init workflow.
package gitx

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Run executes git with the given arguments, returning trimmed stdout.
// On failure the error carries the command line and git's stderr.
func Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = out
		}
		if msg == "" {
			msg = err.Error()
		}
		return out, fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}

	return out, nil
}

// Runner issues the repository-wiring operations against one directory.
// It keeps no state of its own beyond the on-disk metadata git manages.
type Runner struct {
	Dir string
}

// Init creates git metadata with master as the initial branch, so the
// later push target is the same on every host configuration.
func (r *Runner) Init() error {
	if info, err := os.Stat(filepath.Join(r.Dir, ".git")); err == nil && info.IsDir() {
		return &VcsError{Kind: AlreadyInitialized, Op: "init"}
	}

	if _, err := Run(r.Dir, "init", "-b", "master"); err != nil {
		return classify("init", err)
	}

	return nil
}

func (r *Runner) StageAll() error {
	if _, err := Run(r.Dir, "add", "-A"); err != nil {
		return classify("add", err)
	}

	return nil
}

func (r *Runner) StagePath(p string) error {
	if _, err := Run(r.Dir, "add", "--", p); err != nil {
		return classify("add", err)
	}

	return nil
}

func (r *Runner) Commit(message string) error {
	if _, err := Run(r.Dir, "commit", "-m", message); err != nil {
		return classify("commit", err)
	}

	return nil
}

func (r *Runner) AddRemote(name, url string) error {
	if _, err := Run(r.Dir, "remote", "add", name, url); err != nil {
		return classify("remote add", err)
	}

	return nil
}

func (r *Runner) Push(remote, branch string) error {
	if _, err := Run(r.Dir, "push", "-u", remote, branch); err != nil {
		return classify("push", err)
	}

	return nil
}
