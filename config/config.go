package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vesselhq/vessel/errors"
	"github.com/vesselhq/vessel/fuzzy"
)

// Version is the config document schema version. It is written on every
// save and is not user-editable.
const Version = 1

// DefaultFileName is the config file name under the vessel directory.
const DefaultFileName = "config.yml"

// Document is the persisted settings tree. All user-editable leaves are
// nullable; absent means "use the built-in behavior".
type Document struct {
	// Version is the schema version marker, always the Version constant.
	Version int `yaml:"version"`

	// Team is the currently active team. When set, a credential for it
	// must exist in the credential store.
	Team *string `yaml:"team"`

	// Defaults holds per-command fallback settings.
	Defaults Defaults `yaml:"defaults,omitempty"`
}

// Defaults holds values commands fall back to when no flag is given.
type Defaults struct {
	// Project is the project commands operate on when none is specified.
	Project *string `yaml:"project,omitempty"`
}

// NewDocument returns a fresh document with every leaf at its default.
func NewDocument() *Document {
	return &Document{Version: Version}
}

// CredentialSource lists the teams that have a stored credential. It is the
// only view of the credential store the config layer needs; secrets never
// pass through here.
type CredentialSource interface {
	List() ([]string, error)
}

// Store owns the on-disk config document. Every operation performs a full
// read-modify-write cycle against the file; nothing is cached across calls,
// so external edits are picked up immediately. Concurrent invocations are
// not coordinated and the last writer wins.
type Store struct {
	path  string
	creds CredentialSource

	// ErrWriter receives non-fatal warnings. Defaults to os.Stderr.
	ErrWriter io.Writer

	// Warnings collects non-fatal issues encountered during reads.
	Warnings []string
}

// NewStore creates a store for the config file at path, validating the team
// field against creds on every read.
func NewStore(path string, creds CredentialSource) *Store {
	return &Store{
		path:      path,
		creds:     creds,
		ErrWriter: os.Stderr,
	}
}

// DefaultPath returns the standard config file location, ~/.vessel/config.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".vessel", DefaultFileName), nil
}

// warn records a non-fatal issue and prints it.
func (s *Store) warn(msg string) {
	s.Warnings = append(s.Warnings, msg)
	if s.ErrWriter != nil {
		fmt.Fprintf(s.ErrWriter, "Warning: %s\n", msg)
	}
}

// Read loads and validates the document.
//
// A missing file is not an error: defaults are returned without creating
// the file. An unparsable file is reset: defaults are written over it so
// the failure does not repeat on every invocation. A file that parses but
// fails validation (most importantly a team with no stored credential) is
// surfaced as an error; silently dropping the team would break credential
// resolution invisibly.
func (s *Store) Read() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.warn(fmt.Sprintf("no config file at %s, using defaults", s.path))
			return NewDocument(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		s.warn(fmt.Sprintf("could not parse %s: %v; resetting to defaults", s.path, err))
		fresh := NewDocument()
		if err := s.Write(fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	}

	if err := s.validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Write revalidates doc and persists it with owner-only permissions,
// creating the config directory if needed. The canonicalized document is
// always what lands on disk, never raw input.
func (s *Store) Write(doc *Document) error {
	if err := s.validate(doc); err != nil {
		return err
	}
	doc.Version = Version

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Get returns the value at the dotted path. The second return value is
// false when the leaf is unset.
func (s *Store) Get(path string) (string, bool, error) {
	f, ok := lookup(path)
	if !ok {
		return "", false, errors.NewUnknownKey(path, Paths())
	}

	doc, err := s.Read()
	if err != nil {
		return "", false, err
	}

	v, set := f.get(doc)
	return v, set, nil
}

// Set places value at the dotted path and persists the result.
func (s *Store) Set(path, value string) error {
	f, ok := lookup(path)
	if !ok {
		return errors.NewUnknownKey(path, Paths())
	}

	doc, err := s.Read()
	if err != nil {
		return err
	}

	f.set(doc, value)
	return s.Write(doc)
}

// Remove deletes the value at the dotted path, restoring the schema
// default. Removing an already-unset leaf is a no-op that still rewrites
// the file.
func (s *Store) Remove(path string) error {
	f, ok := lookup(path)
	if !ok {
		return errors.NewUnknownKey(path, Paths())
	}

	doc, err := s.Read()
	if err != nil {
		return err
	}

	f.unset(doc)
	return s.Write(doc)
}

// Clear rewrites the config file to defaults regardless of its content.
func (s *Store) Clear() error {
	return s.Write(NewDocument())
}

// validate applies document-level rules. The team invariant runs here so it
// covers every read, not just explicit sets; an externally edited config
// pointing at a deleted team is caught immediately.
func (s *Store) validate(doc *Document) error {
	if doc.Version != 0 && doc.Version != Version {
		return &errors.CLIError{
			Err:     errors.ErrUnsupportedVersion,
			Message: fmt.Sprintf("Unsupported config version %d (expected %d).", doc.Version, Version),
			Details: fmt.Sprintf("The file %s may have been written by a newer vessel release.", s.path),
		}
	}

	if doc.Team != nil {
		teams, err := s.creds.List()
		if err != nil {
			return err
		}
		if !containsString(teams, *doc.Team) {
			suggestion, _ := fuzzy.Closest(teams, *doc.Team)
			return errors.NewUnknownTeam(*doc.Team, suggestion)
		}
	}

	return nil
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
