package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vesselhq/vessel/api"
	"github.com/vesselhq/vessel/auth"
	"github.com/vesselhq/vessel/credentials"
	"github.com/vesselhq/vessel/errors"
)

func newAuthCmd(deps *Dependencies, flags *rootFlags) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Vessel authentication",
		Long:  "Authenticate with Vessel, check authentication status, and manage stored credentials.",
	}

	authCmd.AddCommand(
		newLoginCmd(deps),
		newLogoutCmd(deps),
		newStatusCmd(deps, flags),
	)

	return authCmd
}

func newLoginCmd(deps *Dependencies) *cobra.Command {
	var (
		team     string
		key      string
		noVerify bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with Vessel",
		Long: `Store an API key for a team.

The key is prompted for interactively unless --key is given. Unless
--no-verify is set, the key is checked against the API first, which also
discovers the team it belongs to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, deps, team, key, noVerify)
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "team to store the credential under")
	cmd.Flags().StringVar(&key, "key", "", "API key (prompted when omitted)")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip verifying the key against the API")

	return cmd
}

func runLogin(cmd *cobra.Command, deps *Dependencies, team, key string, noVerify bool) error {
	if key == "" {
		secret, err := deps.ReadSecret()
		if err != nil {
			return err
		}
		key = secret
	}
	key = strings.TrimSpace(key)

	if err := auth.ValidateKey(key); err != nil {
		return err
	}

	if !noVerify && deps.Viewer != nil {
		viewer, err := deps.Viewer(cmd.Context(), credentials.Resolved{
			APIKey: key,
			Source: credentials.SourceFlag,
		})
		if err != nil {
			return errors.WrapConnectionError(err, api.BaseURL())
		}
		if team == "" {
			team = viewer.Team
		} else if team != viewer.Team {
			return &errors.CLIError{
				Message:    fmt.Sprintf("This key belongs to team %q, not %q.", viewer.Team, team),
				Suggestion: "Drop the --team flag to use the key's own team.",
			}
		}
	}

	if team == "" {
		return &errors.CLIError{
			Message:    "No team to store the credential under.",
			Suggestion: "Pass --team, or let verification discover it by omitting --no-verify.",
		}
	}

	if err := deps.Credentials.Set(team, key); err != nil {
		return err
	}

	// Make the new team current when none is selected yet. The credential
	// must be stored first or the config write would fail validation.
	if _, ok, err := deps.Config.Get("team"); err == nil && !ok {
		if err := deps.Config.Set("team", team); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in to team %s (%s)\n", team, auth.Fingerprint(key))
	return nil
}

func newLogoutCmd(deps *Dependencies) *cobra.Command {
	var (
		team string
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(cmd, deps, team, all)
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "team to log out of (default: the current team)")
	cmd.Flags().BoolVar(&all, "all", false, "remove credentials for every team")

	return cmd
}

func runLogout(cmd *cobra.Command, deps *Dependencies, team string, all bool) error {
	if all {
		// Unset team first: once the store is cleared, a configured team
		// would make every config read fail validation.
		if err := deps.Config.Remove("team"); err != nil {
			return err
		}
		if err := deps.Credentials.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Removed all stored credentials.")
		return nil
	}

	current, hasCurrent, err := deps.Config.Get("team")
	if err != nil {
		return err
	}
	if team == "" {
		if !hasCurrent {
			return &errors.CLIError{
				Message:    "No team to log out of.",
				Suggestion: "Pass --team, or --all to remove every credential.",
			}
		}
		team = current
	}

	// Same ordering constraint as --all: drop the config reference before
	// the credential it points to.
	if hasCurrent && current == team {
		if err := deps.Config.Remove("team"); err != nil {
			return err
		}
	}
	if err := deps.Credentials.Remove(team); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged out of team %s\n", team)
	return nil
}

func newStatusCmd(deps *Dependencies, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		Long: `Display which credential the current invocation would use and where it
came from (--api-key flag, VESSEL_API_KEY, or the configured team).

The key itself is never printed, only its fingerprint.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, deps, flags)
		},
	}
}

func runStatus(cmd *cobra.Command, deps *Dependencies, flags *rootFlags) error {
	resolved, ok, err := credentials.Resolve(flags.apiKey, deps.Config, deps.Credentials)
	if err != nil {
		return err
	}
	if !ok {
		return errors.NewNotAuthenticated()
	}

	out := cmd.OutOrStdout()
	switch resolved.Source {
	case credentials.SourceFlag:
		fmt.Fprintln(out, "Credential source: --api-key flag")
	case credentials.SourceEnv:
		fmt.Fprintf(out, "Credential source: %s environment variable\n", credentials.EnvAPIKey)
	case credentials.SourceConfig:
		fmt.Fprintf(out, "Credential source: stored credential for team %s\n", resolved.Team)
	}
	fmt.Fprintf(out, "Key fingerprint:   %s\n", auth.Fingerprint(resolved.APIKey))

	if exp, isJWT := auth.Expiry(resolved.APIKey); isJWT {
		if time.Now().After(exp) {
			fmt.Fprintf(out, "Session token:     expired %s\n", exp.Format(time.RFC3339))
		} else {
			fmt.Fprintf(out, "Session token:     expires %s\n", exp.Format(time.RFC3339))
		}
	}

	flags.debugf("resolved credential via source %q", resolved.Source)
	return nil
}
