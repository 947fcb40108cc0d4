package gitx

import (
	"fmt"
	"strings"
)

type ErrorKind int

const (
	Unknown ErrorKind = iota
	AlreadyInitialized
	NothingToCommit
	PushRejected
)

// VcsError wraps a git failure with the operation that produced it.
type VcsError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *VcsError) Error() string {
	switch e.Kind {
	case AlreadyInitialized:
		return "git metadata already exists in this directory"
	case NothingToCommit:
		return "nothing to commit"
	case PushRejected:
		return fmt.Sprintf("push rejected: %v", e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *VcsError) Unwrap() error {
	return e.Err
}

// classify maps git's exit text onto the error kinds the orchestrator
// distinguishes. Anything unrecognized stays an Unknown VcsError.
func classify(op string, err error) error {
	msg := strings.ToLower(err.Error())
	kind := Unknown

	switch op {
	case "commit":
		if strings.Contains(msg, "nothing to commit") || strings.Contains(msg, "nothing added to commit") {
			kind = NothingToCommit
		}
	case "push":
		if strings.Contains(msg, "rejected") ||
			strings.Contains(msg, "non-fast-forward") ||
			strings.Contains(msg, "authentication failed") ||
			strings.Contains(msg, "permission denied") ||
			strings.Contains(msg, "could not read from remote") {
			kind = PushRejected
		}
	case "init":
		if strings.Contains(msg, "already exists") {
			kind = AlreadyInitialized
		}
	}

	return &VcsError{Kind: kind, Op: op, Err: err}
}
