package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/pathkit/internal/app"
	"github.com/oshokin/pathkit/internal/config"
	"github.com/oshokin/pathkit/internal/constants"
	"github.com/oshokin/pathkit/internal/fileutil"
	"github.com/oshokin/pathkit/internal/logger"
	"github.com/oshokin/pathkit/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	application *app.App

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "pathkit",
		Short: "Filesystem and text helpers for scripts and shells.",
		Long: `pathkit is a CLI tool that exposes small filesystem and text helpers:
- Config, cache and home directory resolution
- Whole-file and line-oriented reads
- Deduplicating keyed lines (last occurrence wins)
- Case-insensitive search and literal replacement
- Temporary files and path building
- A bounded history file`,
		Version:           version.Short(),
		PersistentPreRun:  initConfig,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s' in the config directory)",
			constants.DefaultConfigFilename))

	rootCmd.PersistentFlags().String(
		"log-level",
		"",
		"log level: debug, info, warn, error.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag, defaultConfigFilename(cmd))
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)

	application = app.NewFromConfig(appConfig, cmd.OutOrStdout())
}

// defaultConfigFilename returns the configuration file inside the pathkit config directory.
func defaultConfigFilename(cmd *cobra.Command) string {
	return filepath.Join(fileutil.NewOS().ConfigDir(cmd.Context()), constants.DefaultConfigFilename)
}

// configFilename returns the configuration file commands should write to.
func configFilename(cmd *cobra.Command) string {
	if configFilenameFromFlag != "" {
		return configFilenameFromFlag
	}

	if appConfig != nil && appConfig.ConfigFileUsed != "" {
		return appConfig.ConfigFileUsed
	}

	return defaultConfigFilename(cmd)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	return config.ValidateConfig(cfg)
}
