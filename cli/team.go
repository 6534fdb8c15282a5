package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTeamCmd(deps *Dependencies) *cobra.Command {
	teamCmd := &cobra.Command{
		Use:   "team",
		Short: "Manage the active team",
	}

	teamCmd.AddCommand(
		newTeamListCmd(deps),
		newTeamSwitchCmd(deps),
	)

	return teamCmd
}

func newTeamListCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List teams with stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := deps.Credentials.List()
			if err != nil {
				return err
			}

			// Validation errors here only mean the marker is unknown;
			// the listing itself is still useful.
			current, _, _ := deps.Config.Get("team")

			out := cmd.OutOrStdout()
			if len(teams) == 0 {
				fmt.Fprintln(out, "No teams. Run 'vessel auth login' to add one.")
				return nil
			}
			for _, team := range teams {
				marker := " "
				if team == current {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, team)
			}
			return nil
		},
	}
}

func newTeamSwitchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <team>",
		Short: "Make a team the current one",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			teams, err := deps.Credentials.List()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return teams, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validation (including the did-you-mean hint for typos)
			// happens inside the config store.
			if err := deps.Config.Set("team", args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Switched to team %s\n", args[0])
			return nil
		},
	}
}
