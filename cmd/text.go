package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/oshokin/pathkit/internal/logger"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	findCmd = &cobra.Command{
		Use:   "find <haystack> <needle>",
		Short: "Print the offset of needle in haystack ignoring ASCII case",
		Args:  cobra.ExactArgs(2), //nolint:mnd // haystack and needle.
		Run: func(cmd *cobra.Command, args []string) {
			application.ExecuteFindCommand(cmd.Context(), args[0], args[1])
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	replaceCmd = &cobra.Command{
		Use:   "replace <search> <replace> [text]",
		Short: "Replace every occurrence of search with replace",
		Long: `Replace every occurrence of search with replace.

The text is read from standard input when it is not given as an argument.
An empty search leaves the text unchanged.`,
		Args: cobra.RangeArgs(2, 3), //nolint:mnd // search, replace and optional text.
		Run: func(cmd *cobra.Command, args []string) {
			text, err := argumentOrStdin(cmd, args, 2) //nolint:mnd // text is the third argument.
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to read text: %v", err)
			}

			application.ExecuteReplaceCommand(cmd.Context(), args[0], args[1], text)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(findCmd, replaceCmd)
}

// argumentOrStdin returns args[index] or, when it is missing, everything on standard input.
func argumentOrStdin(cmd *cobra.Command, args []string, index int) (string, error) {
	if index < len(args) {
		return args[index], nil
	}

	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}

	return string(content), nil
}
