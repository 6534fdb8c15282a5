package cli

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vesselhq/vessel/api"
	"github.com/vesselhq/vessel/config"
	"github.com/vesselhq/vessel/credentials"
)

// Dependencies holds all injectable dependencies for CLI commands.
// This enables testing by allowing fake implementations to be injected.
type Dependencies struct {
	// Config is the settings store at ~/.vessel/config.yml.
	Config *config.Store

	// Credentials is the team->secret store at ~/.vessel/credentials.yml.
	Credentials *credentials.Store

	// Viewer verifies a credential against the API and returns the
	// identity behind it. Nil disables verification (tests, --no-verify).
	Viewer func(ctx context.Context, cred credentials.Resolved) (*api.Viewer, error)

	// ReadSecret reads a secret from the terminal without echo.
	ReadSecret func() (string, error)
}

// NewDependencies creates dependencies with real implementations.
func NewDependencies() (*Dependencies, error) {
	credPath, err := credentials.DefaultPath()
	if err != nil {
		return nil, err
	}
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}

	creds := credentials.NewStore(credPath)
	return &Dependencies{
		Config:      config.NewStore(cfgPath, creds),
		Credentials: creds,
		Viewer: func(ctx context.Context, cred credentials.Resolved) (*api.Viewer, error) {
			return api.NewClient(api.ClientConfig{Credential: cred}).Viewer(ctx)
		},
		ReadSecret: readSecretFromTerminal,
	}, nil
}

func readSecretFromTerminal() (string, error) {
	fmt.Fprint(os.Stderr, "API key: ")
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read API key: %w", err)
	}
	return string(secret), nil
}
