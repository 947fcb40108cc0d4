package hosting

import "fmt"

type AuthErrorKind int

const (
	AuthUnauthorized AuthErrorKind = iota
	AuthTokenExists
)

// AuthError reports a failure while exchanging credentials for a token.
type AuthError struct {
	Kind    AuthErrorKind
	Message string
}

func (e *AuthError) Error() string {
	switch e.Kind {
	case AuthTokenExists:
		return fmt.Sprintf("a token with this fingerprint already exists: %s", e.Message)
	default:
		return fmt.Sprintf("invalid credentials: %s", e.Message)
	}
}

type RepoErrorKind int

const (
	RepoUnauthorized RepoErrorKind = iota
	RepoNameConflict
)

// RepoError reports a failure while using the authenticated API context.
type RepoError struct {
	Kind    RepoErrorKind
	Message string
}

func (e *RepoError) Error() string {
	switch e.Kind {
	case RepoNameConflict:
		return fmt.Sprintf("a repository with that name already exists: %s", e.Message)
	default:
		return fmt.Sprintf("not authorized: %s", e.Message)
	}
}
