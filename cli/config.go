package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vesselhq/vessel/config"
)

func newConfigCmd(deps *Dependencies) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vessel settings",
		Long: `Read and write settings in ~/.vessel/config.yml.

Settings are addressed by dotted key, e.g. 'team' or 'defaults.project'.
Run 'vessel config list' to see every available key.`,
	}

	configCmd.AddCommand(
		newConfigGetCmd(deps),
		newConfigSetCmd(deps),
		newConfigDeleteCmd(deps),
		newConfigListCmd(deps),
	)

	return configCmd
}

// completeConfigKeys offers the schema path vocabulary for shell completion
// of the first positional argument.
func completeConfigKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Paths(), cobra.ShellCompDirectiveNoFileComp
}

func newConfigGetCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:               "get <key>",
		Short:             "Print a setting",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok, err := deps.Config.Get(args[0])
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), value)
			}
			return nil
		},
	}
}

func newConfigSetCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:               "set <key> <value>",
		Short:             "Set a setting",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return deps.Config.Set(args[0], args[1])
		},
	}
}

func newConfigDeleteCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:               "delete <key>",
		Aliases:           []string{"unset"},
		Short:             "Reset a setting to its default",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return deps.Config.Remove(args[0])
		},
	}
}

func newConfigListCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := deps.Config.Read()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range config.Paths() {
				if value, ok := config.GetPath(doc, path); ok {
					fmt.Fprintf(out, "%s = %s\n", path, value)
				} else {
					fmt.Fprintf(out, "%s (unset)\n", path)
				}
			}
			return nil
		},
	}
}
