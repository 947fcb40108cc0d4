// Package credstore persists the GitHub access token between runs.
package credstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const credentialsFile = "credentials.yml"

type record struct {
	Token string `yaml:"token"`
}

// Store reads and writes a single token record under a per-application
// directory in the user's profile.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func NewDefault() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("locate user config dir: %w", err)
	}

	return New(filepath.Join(base, "ginit")), nil
}

func (s *Store) Path() string {
	return filepath.Join(s.dir, credentialsFile)
}

// Load returns the saved token, or "" if nobody has authenticated yet.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read credentials: %w", err)
	}

	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return "", fmt.Errorf("parse credentials: %w", err)
	}

	return strings.TrimSpace(rec.Token), nil
}

// Save overwrites any previously stored token.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}

	data, err := yaml.Marshal(record{Token: strings.TrimSpace(token)})
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	tmpPath := s.Path() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}

	return os.Rename(tmpPath, s.Path())
}
