package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/pathkit/internal/logger"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	dirsCmd = &cobra.Command{
		Use:   "dirs",
		Short: "Print the config, cache and home directories",
		Long: `Print the config, cache and home directories.

The config and cache directories are created when they are missing.
The HOME environment variable takes precedence over the platform home directory.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			application.ExecuteDirsCommand(cmd.Context())
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	mkdirCmd = &cobra.Command{
		Use:   "mkdir <dir>...",
		Short: "Create directories and their parents when they are missing",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := application.ExecuteMkdirCommand(cmd.Context(), args); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to create directory: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	touchCmd = &cobra.Command{
		Use:   "touch <file>...",
		Short: "Create empty files when they are missing",
		Long: `Create empty files when they are missing.

Existing files keep their content.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := application.ExecuteTouchCommand(cmd.Context(), args); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to create file: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	catCmd = &cobra.Command{
		Use:   "cat <file>",
		Short: "Print the content of a regular file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showSize, _ := cmd.Flags().GetBool("size")

			if err := application.ExecuteCatCommand(cmd.Context(), args[0], showSize); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to read file: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	linesCmd = &cobra.Command{
		Use:   "lines <file>",
		Short: "Print the numbered lines of a file",
		Long: `Print the numbered lines of a file.

An unreadable file is reported and treated as empty.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			application.ExecuteLinesCommand(cmd.Context(), args[0])
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	uniqueCmd = &cobra.Command{
		Use:   "unique <file>",
		Short: "Print the lines of a file keeping the last line of every key",
		Long: `Print the lines of a file keeping the last line of every key.

The key of a line is the text before the first separator. Blank lines are skipped.
Lines are printed in the order of the last occurrence of their key.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			separator := appConfig.KeySeparator
			if flag := cmd.Flags().Lookup("separator"); flag != nil && flag.Changed {
				separator, _ = cmd.Flags().GetString("separator")
			}

			application.ExecuteUniqueCommand(cmd.Context(), args[0], separator)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	tmpCmd = &cobra.Command{
		Use:   "tmp [content]",
		Short: "Write content to a new temporary file and print its path",
		Long: `Write content to a new temporary file and print its path.

The content is read from standard input when it is not given as an argument.
The file is not removed.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			content, err := argumentOrStdin(cmd, args, 0)
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to read content: %v", err)
			}

			if err = application.ExecuteTempCommand(cmd.Context(), content); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to create temporary file: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	pathCmd = &cobra.Command{
		Use:   "path <path>",
		Short: "Build a path and create its parent directories",
		Long: `Build a path and create its parent directories.

Absolute paths are kept, "~/rest" and "~rest" are resolved against the home directory,
other paths are joined to --base, the configured base_dir or the working directory.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			baseDir, _ := cmd.Flags().GetString("base")

			application.ExecutePathCommand(cmd.Context(), args[0], baseDir)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	catCmd.Flags().BoolP("size", "s", false, "log the size of the file.")
	uniqueCmd.Flags().StringP("separator", "S", "", "key separator (defaults to the configured key_separator).")
	pathCmd.Flags().StringP("base", "b", "", "base directory for relative paths (defaults to the configured base_dir).")

	rootCmd.AddCommand(dirsCmd, mkdirCmd, touchCmd, catCmd, linesCmd, uniqueCmd, tmpCmd, pathCmd)
}
