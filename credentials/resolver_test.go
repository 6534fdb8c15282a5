package credentials

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/vesselhq/vessel/config"
)

// newResolveFixture builds a config store and credential store sharing a
// temp dir, with team "acme" holding secret "K3" and selected in config.
func newResolveFixture(t *testing.T) (*config.Store, *Store) {
	t.Helper()
	dir := t.TempDir()

	creds := NewStore(filepath.Join(dir, "credentials.yml"))
	if err := creds.Set("acme", "K3"); err != nil {
		t.Fatal(err)
	}

	cfg := config.NewStore(filepath.Join(dir, "config.yml"), creds)
	cfg.ErrWriter = &bytes.Buffer{}
	if err := cfg.Set("team", "acme"); err != nil {
		t.Fatal(err)
	}

	return cfg, creds
}

func TestResolve_FlagWins(t *testing.T) {
	cfg, creds := newResolveFixture(t)
	t.Setenv(EnvAPIKey, "K2")

	got, ok, err := Resolve("K1", cfg, creds)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if !ok || got.APIKey != "K1" {
		t.Errorf("APIKey = %q, %v, want K1, true", got.APIKey, ok)
	}
	if got.Source != SourceFlag {
		t.Errorf("Source = %q, want %q", got.Source, SourceFlag)
	}
}

func TestResolve_EnvBeatsConfig(t *testing.T) {
	cfg, creds := newResolveFixture(t)
	t.Setenv(EnvAPIKey, "K2")

	got, ok, err := Resolve("", cfg, creds)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if !ok || got.APIKey != "K2" {
		t.Errorf("APIKey = %q, %v, want K2, true", got.APIKey, ok)
	}
	if got.Source != SourceEnv {
		t.Errorf("Source = %q, want %q", got.Source, SourceEnv)
	}
}

func TestResolve_ConfigTeamCredential(t *testing.T) {
	cfg, creds := newResolveFixture(t)
	t.Setenv(EnvAPIKey, "")

	got, ok, err := Resolve("", cfg, creds)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if !ok || got.APIKey != "K3" {
		t.Errorf("APIKey = %q, %v, want K3, true", got.APIKey, ok)
	}
	if got.Source != SourceConfig {
		t.Errorf("Source = %q, want %q", got.Source, SourceConfig)
	}
	if got.Team != "acme" {
		t.Errorf("Team = %q, want acme", got.Team)
	}
}

func TestResolve_NoCredential(t *testing.T) {
	dir := t.TempDir()
	creds := NewStore(filepath.Join(dir, "credentials.yml"))
	cfg := config.NewStore(filepath.Join(dir, "config.yml"), creds)
	cfg.ErrWriter = &bytes.Buffer{}
	t.Setenv(EnvAPIKey, "")

	got, ok, err := Resolve("", cfg, creds)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if ok {
		t.Errorf("Resolve = %+v, want no credential", got)
	}
}

func TestResolve_FlagSkipsConfigRead(t *testing.T) {
	// A flag override must not consult lower-precedence sources, so a
	// broken config (team without credential) cannot fail the command.
	dir := t.TempDir()
	creds := NewStore(filepath.Join(dir, "credentials.yml"))
	if err := creds.Set("acme", "K3"); err != nil {
		t.Fatal(err)
	}

	cfg := config.NewStore(filepath.Join(dir, "config.yml"), creds)
	cfg.ErrWriter = &bytes.Buffer{}
	if err := cfg.Set("team", "acme"); err != nil {
		t.Fatal(err)
	}
	if err := creds.Remove("acme"); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Resolve("", cfg, creds); err == nil {
		t.Fatal("config-sourced resolve should fail while team is dangling")
	}

	got, ok, err := Resolve("K1", cfg, creds)
	if err != nil {
		t.Fatalf("flag-sourced resolve error: %v", err)
	}
	if !ok || got.APIKey != "K1" {
		t.Errorf("APIKey = %q, %v, want K1, true", got.APIKey, ok)
	}
}
