package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/pathkit/internal/constants"
)

// writeConfigFile writes content to a config file inside a temporary directory.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), constants.DefaultFilePermissions))

	return path
}

// TestKeys tests that every key is listed once and sorted.
func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		KeyAppName,
		KeyBaseDir,
		KeyHistoryFile,
		KeyHistoryMaxItems,
		KeyKeySeparator,
		KeyLogLevel,
		KeyMaxFileSize,
	}, Keys())
}

// TestLoadConfig tests the LoadConfig function.
func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		configContent string
		useFlag       bool
		missingFile   bool
		expectedError string
		check         func(t *testing.T, cfg *Config)
	}{
		{
			name:        "missing default file uses defaults",
			missingFile: true,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
				assert.Equal(t, constants.AppName, cfg.AppName)
				assert.Empty(t, cfg.BaseDir)
				assert.Empty(t, cfg.HistoryFile)
				assert.Equal(t, int64(DefaultHistoryMaxItems), cfg.HistoryMaxItems)
				assert.Equal(t, DefaultKeySeparator, cfg.KeySeparator)
				assert.Empty(t, cfg.MaxFileSize)
				assert.Empty(t, cfg.ConfigFileUsed)
			},
		},
		{
			name:    "explicit file overrides defaults",
			useFlag: true,
			configContent: `
log_level: "debug"
app_name: "vimb"
base_dir: "/srv/data"
history_max_items: 50
key_separator: ","
max_file_size: "10MB"
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "vimb", cfg.AppName)
				assert.Equal(t, "/srv/data", cfg.BaseDir)
				assert.Equal(t, int64(50), cfg.HistoryMaxItems)
				assert.Equal(t, ",", cfg.KeySeparator)
				assert.Equal(t, "10MB", cfg.MaxFileSize)
				assert.NotEmpty(t, cfg.ConfigFileUsed)
			},
		},
		{
			name:          "default file present",
			configContent: `log_level: "warn"`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "warn", cfg.LogLevel)
				assert.Equal(t, constants.AppName, cfg.AppName)
			},
		},
		{
			name:          "explicit missing file",
			useFlag:       true,
			missingFile:   true,
			expectedError: "failed to read config from file",
		},
		{
			name:          "invalid yaml",
			useFlag:       true,
			configContent: "log_level: [unclosed",
			expectedError: "failed to read config from file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.yaml")
			if !tt.missingFile {
				path = writeConfigFile(t, tt.configContent)
			}

			flagValue, defaultValue := "", path
			if tt.useFlag {
				flagValue, defaultValue = path, filepath.Join(t.TempDir(), "unused.yaml")
			}

			cfg, err := LoadConfig(flagValue, defaultValue)
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

// TestLoadConfig_EnvironmentOverride tests that PATHKIT_* variables win over the file.
//
//nolint:paralleltest // t.Setenv cannot be used in parallel tests.
func TestLoadConfig_EnvironmentOverride(t *testing.T) {
	t.Setenv("PATHKIT_LOG_LEVEL", "error")
	t.Setenv("PATHKIT_HISTORY_MAX_ITEMS", "7")

	path := writeConfigFile(t, `log_level: "debug"`)

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, int64(7), cfg.HistoryMaxItems)
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	validConfig := func() *Config {
		return &Config{
			LogLevel:        "info",
			AppName:         "pathkit",
			HistoryMaxItems: 10,
			KeySeparator:    "\t",
		}
	}

	tests := []struct {
		name          string
		modify        func(cfg *Config)
		expectedError error
		check         func(t *testing.T, cfg *Config)
	}{
		{
			name:   "valid config",
			modify: func(*Config) {},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
				assert.Equal(t, int64(0), cfg.ParsedMaxFileSize)
			},
		},
		{
			name: "max file size is parsed",
			modify: func(cfg *Config) {
				cfg.MaxFileSize = "2 KiB"
			},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, int64(2048), cfg.ParsedMaxFileSize)
			},
		},
		{
			name: "zero max file size disables the limit",
			modify: func(cfg *Config) {
				cfg.MaxFileSize = "0"
			},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, int64(0), cfg.ParsedMaxFileSize)
			},
		},
		{
			name: "app name is sanitized",
			modify: func(cfg *Config) {
				cfg.AppName = "my/app"
			},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "my_app", cfg.AppName)
			},
		},
		{
			name: "unknown log level",
			modify: func(cfg *Config) {
				cfg.LogLevel = "verbose"
			},
			expectedError: ErrUnknownLogLevel,
		},
		{
			name: "empty app name",
			modify: func(cfg *Config) {
				cfg.AppName = "  "
			},
			expectedError: ErrEmptyAppName,
		},
		{
			name: "zero history items",
			modify: func(cfg *Config) {
				cfg.HistoryMaxItems = 0
			},
			expectedError: ErrInvalidHistoryMaxItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.modify(cfg)

			err := ValidateConfig(cfg)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

// TestValidateConfig_InvalidMaxFileSize tests the error for an unparsable size.
func TestValidateConfig_InvalidMaxFileSize(t *testing.T) {
	t.Parallel()

	cfg := &Config{LogLevel: "info", AppName: "pathkit", HistoryMaxItems: 1, MaxFileSize: "lots"}

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse max file size")
}

// TestSetConfigValue tests that values are replaced in place and new keys are appended.
func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `# pathkit settings
log_level: "info" # verbosity
app_name: "pathkit"
history_max_items: 100
`)

	require.NoError(t, SetConfigValue(path, KeyLogLevel, "debug"))
	require.NoError(t, SetConfigValue(path, KeyHistoryMaxItems, "25"))
	require.NoError(t, SetConfigValue(path, KeyBaseDir, "/srv"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "# pathkit settings")
	assert.Contains(t, text, `log_level: "debug"`)
	assert.Contains(t, text, "# verbosity")
	assert.Contains(t, text, "history_max_items: 25")
	assert.Contains(t, text, `base_dir: "/srv"`)
	assert.Less(t, strings.Index(text, "log_level"), strings.Index(text, "app_name"))
	assert.Less(t, strings.Index(text, "history_max_items"), strings.Index(text, "base_dir"))

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(25), cfg.HistoryMaxItems)
	assert.Equal(t, "/srv", cfg.BaseDir)
}

// TestSetConfigValue_RepairsBrokenKey tests that a broken key can be fixed while other keys are broken too.
func TestSetConfigValue_RepairsBrokenKey(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "log_level: \"loud\"\nmax_file_size: \"lots\"\n")

	require.NoError(t, SetConfigValue(path, KeyLogLevel, "debug"))
	require.NoError(t, SetConfigValue(path, KeyMaxFileSize, "10MB"))

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
}

// TestSetConfigValue_MissingFile tests that a missing file and its directory are created.
func TestSetConfigValue_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, SetConfigValue(path, KeyKeySeparator, ","))

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, ",", cfg.KeySeparator)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

// TestSetConfigValue_Errors tests the rejected keys and values.
func TestSetConfigValue_Errors(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `log_level: "info"`)

	require.ErrorIs(t, SetConfigValue(path, "unknown_key", "x"), ErrUnknownConfigKey)

	tests := []struct {
		key           string
		value         string
		expectedCause error
	}{
		{key: KeyHistoryMaxItems, value: "many"},
		{key: KeyHistoryMaxItems, value: "0", expectedCause: ErrInvalidHistoryMaxItems},
		{key: KeyHistoryMaxItems, value: "-3", expectedCause: ErrInvalidHistoryMaxItems},
		{key: KeyLogLevel, value: "loud", expectedCause: ErrUnknownLogLevel},
		{key: KeyAppName, value: " ", expectedCause: ErrEmptyAppName},
		{key: KeyMaxFileSize, value: "lots"},
	}

	for _, tt := range tests {
		err := SetConfigValue(path, tt.key, tt.value)
		require.ErrorIs(t, err, ErrInvalidConfigValue, "%s=%s", tt.key, tt.value)

		if tt.expectedCause != nil {
			require.ErrorIs(t, err, tt.expectedCause, "%s=%s", tt.key, tt.value)
		}
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `log_level: "info"`, string(content))
}
