package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/pathkit/internal/config"
	"github.com/oshokin/pathkit/internal/constants"
)

const testBaseConfigContent = `
log_level: "warn"
app_name: "pathkit"
base_dir: "/config/base"
history_max_items: 20
key_separator: ","
max_file_size: "1MB"
`

// newTestFlagSet creates a flag set with the persistent flags of the root command.
func newTestFlagSet(t *testing.T, flags map[string]string) *pflag.FlagSet {
	t.Helper()

	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String("log-level", "", "")

	for name, value := range flags {
		require.NoError(t, flagSet.Set(name, value))
	}

	return flagSet
}

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
func TestFlagOverrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
		expectedError  error
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "warn", cfg.LogLevel)
				assert.Equal(t, zapcore.WarnLevel, cfg.ParsedLogLevel)
				assert.Equal(t, "/config/base", cfg.BaseDir)
				assert.Equal(t, ",", cfg.KeySeparator)
				assert.Equal(t, int64(1000*1000), cfg.ParsedMaxFileSize)
			},
		},
		{
			name:  "log level flag overrides config",
			flags: map[string]string{"log-level": "debug"},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
				assert.Equal(t, "/config/base", cfg.BaseDir)
			},
		},
		{
			name:          "invalid log level flag",
			flags:         map[string]string{"log-level": "loud"},
			expectedError: config.ErrUnknownLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			configPath := filepath.Join(t.TempDir(), constants.DefaultConfigFilename)
			require.NoError(t, os.WriteFile(configPath, []byte(testBaseConfigContent), constants.DefaultFilePermissions))

			cfg, err := config.LoadConfig(configPath, "")
			require.NoError(t, err)

			err = bindFlagsToConfig(newTestFlagSet(t, tt.flags), cfg)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)

				return
			}

			require.NoError(t, err)
			tt.expectedConfig(t, cfg)
		})
	}
}

// TestArgumentOrStdin tests that a missing argument is read from standard input.
func TestArgumentOrStdin(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("from stdin"))

	value, err := argumentOrStdin(cmd, []string{"search", "replace", "from args"}, 2)
	require.NoError(t, err)
	assert.Equal(t, "from args", value)

	value, err = argumentOrStdin(cmd, []string{"search", "replace"}, 2)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", value)
}

// TestCommandsAreRegistered tests that every command is reachable from the root command.
func TestCommandsAreRegistered(t *testing.T) {
	t.Parallel()

	for _, path := range [][]string{
		{"dirs"},
		{"mkdir"},
		{"touch"},
		{"cat"},
		{"lines"},
		{"unique"},
		{"find"},
		{"replace"},
		{"tmp"},
		{"path"},
		{"history", "add"},
		{"history", "list"},
		{"config", "set"},
		{"config", "keys"},
		{"config", "path"},
		{"version"},
	} {
		found, _, err := rootCmd.Find(path)
		require.NoError(t, err, strings.Join(path, " "))
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}

// TestVersionCommand tests the version output.
func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out := new(bytes.Buffer)

	cmd := &cobra.Command{}
	cmd.SetOut(out)
	versionCmd.Run(cmd, nil)

	assert.Contains(t, out.String(), "version: ")
	assert.Contains(t, out.String(), "commit: ")
}
