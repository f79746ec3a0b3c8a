package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/pathkit/internal/logger"
	"github.com/oshokin/pathkit/internal/version"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	configSetCmd = &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value, preserving the rest of the file",
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value.
		Run: func(cmd *cobra.Command, args []string) {
			err := application.ExecuteConfigSetCommand(cmd.Context(), configFilename(cmd), args[0], args[1])
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to save configuration: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	configKeysCmd = &cobra.Command{
		Use:   "keys",
		Short: "Print the configuration keys",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			application.ExecuteConfigKeysCommand(cmd.Context())
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(configFilename(cmd))
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(version.Full())
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	configCmd.AddCommand(configSetCmd, configKeysCmd, configPathCmd)
	rootCmd.AddCommand(configCmd, versionCmd)
}
