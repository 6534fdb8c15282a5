package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the credentials file name under the vessel directory.
const DefaultFileName = "credentials.yml"

// Store is a durable mapping of team name to API secret, backed by a single
// YAML file with owner-only permissions. Mutations persist immediately;
// there is no in-memory caching across operations.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the standard credentials file location,
// ~/.vessel/credentials.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".vessel", DefaultFileName), nil
}

// List returns all team names in sorted order. Secrets are never included.
func (s *Store) List() ([]string, error) {
	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	teams := make([]string, 0, len(entries))
	for team := range entries {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams, nil
}

// Get returns the secret for team. The second return value is false when no
// credential is stored for the team; that is not an error.
func (s *Store) Get(team string) (string, bool, error) {
	entries, err := s.load()
	if err != nil {
		return "", false, err
	}

	secret, ok := entries[team]
	return secret, ok, nil
}

// Set stores a secret for team, silently overwriting any existing entry.
func (s *Store) Set(team, secret string) error {
	entries, err := s.load()
	if err != nil {
		return err
	}

	entries[team] = secret
	return s.save(entries)
}

// Remove deletes the credential for team. Removing a team that has no
// credential is a no-op.
func (s *Store) Remove(team string) error {
	entries, err := s.load()
	if err != nil {
		return err
	}

	if _, ok := entries[team]; !ok {
		return nil
	}

	delete(entries, team)
	return s.save(entries)
}

// Clear removes all stored credentials.
func (s *Store) Clear() error {
	return s.save(map[string]string{})
}

func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse credentials file %s: %w", s.path, err)
	}
	if entries == nil {
		entries = map[string]string{}
	}
	return entries, nil
}

func (s *Store) save(entries map[string]string) error {
	// 0700 = owner-only directory, 0600 = owner-only file. Anyone who can
	// read this file can act as the stored teams.
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	return nil
}
