package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/pathkit/internal/logger"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "History management commands",
		Long: `Manage the bounded history file.

Every key appears once in the history, recording it again moves it to the end.
Only the most recent history_max_items entries are kept.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	historyAddCmd = &cobra.Command{
		Use:   "add <line>...",
		Short: "Record lines as the most recent history entries",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := application.ExecuteHistoryAddCommand(cmd.Context(), args); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to record history: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition to be registered in init.
	historyListCmd = &cobra.Command{
		Use:   "list",
		Short: "Print the history from oldest to most recent",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			needle, _ := cmd.Flags().GetString("find")

			if err := application.ExecuteHistoryListCommand(cmd.Context(), needle); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to list history: %v", err)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	historyListCmd.Flags().StringP("find", "f", "", "only print entries containing the text, ignoring ASCII case.")

	historyCmd.AddCommand(historyAddCmd, historyListCmd)
	rootCmd.AddCommand(historyCmd)
}
