package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/pathkit/internal/constants"
	"github.com/oshokin/pathkit/internal/logger"
	"github.com/oshokin/pathkit/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// AppName is the namespace of the config and cache directories and of temporary files.
	AppName string `mapstructure:"app_name"`
	// BaseDir is the directory relative paths are resolved against. Empty means the working directory.
	BaseDir string `mapstructure:"base_dir"`
	// HistoryFile is the history file location. Empty means "history" inside the config directory.
	HistoryFile string `mapstructure:"history_file"`
	// HistoryMaxItems is the number of history entries kept.
	HistoryMaxItems int64 `mapstructure:"history_max_items"`
	// KeySeparator separates the key of a line from the rest of it in history and unique lists.
	KeySeparator string `mapstructure:"key_separator"`
	// MaxFileSize limits the size of files read whole (e.g., "10MB"). Empty or "0" disables the limit.
	MaxFileSize string `mapstructure:"max_file_size"`
	// ConfigFileUsed is the configuration file that was read, empty when defaults were used.
	ConfigFileUsed string `mapstructure:"-"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-"`
	// ParsedMaxFileSize is the parsed read limit in bytes, 0 means unlimited.
	ParsedMaxFileSize int64 `mapstructure:"-"`
}

const (
	// EnvPrefix is the prefix of environment variables overriding configuration keys.
	EnvPrefix = "PATHKIT"

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"

	// DefaultHistoryMaxItems is the default number of history entries kept.
	DefaultHistoryMaxItems = 1000

	// DefaultKeySeparator is the default separator between a line key and the rest of the line.
	DefaultKeySeparator = "\t"

	configType = "yaml"
)

// Configuration keys.
const (
	KeyLogLevel        = "log_level"
	KeyAppName         = "app_name"
	KeyBaseDir         = "base_dir"
	KeyHistoryFile     = "history_file"
	KeyHistoryMaxItems = "history_max_items"
	KeyKeySeparator    = "key_separator"
	KeyMaxFileSize     = "max_file_size"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrEmptyAppName indicates that the application name is empty after sanitizing.
	ErrEmptyAppName = errors.New("app_name cannot be empty")
	// ErrInvalidHistoryMaxItems indicates that the history capacity is invalid.
	ErrInvalidHistoryMaxItems = errors.New("history_max_items must be a positive integer")
	// ErrUnknownConfigKey indicates that the key is not a configuration setting.
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	// ErrInvalidConfigValue indicates that the value does not fit the type of the key.
	ErrInvalidConfigValue = errors.New("invalid configuration value")
)

// defaults returns the value of every configuration key when nothing overrides it.
func defaults() map[string]any {
	return map[string]any{
		KeyLogLevel:        DefaultLogLevel,
		KeyAppName:         constants.AppName,
		KeyBaseDir:         "",
		KeyHistoryFile:     "",
		KeyHistoryMaxItems: DefaultHistoryMaxItems,
		KeyKeySeparator:    DefaultKeySeparator,
		KeyMaxFileSize:     "",
	}
}

// Keys returns the sorted configuration keys.
func Keys() []string {
	keys := make([]string, 0, len(defaults()))
	for key := range defaults() {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// LoadConfig loads configuration settings from a YAML file and PATHKIT_* environment variables.
// When configFilename is empty, defaultConfigFilename is used and may be missing,
// in which case the defaults apply. An explicitly given file must exist.
func LoadConfig(configFilename, defaultConfigFilename string) (*Config, error) {
	v := newViper()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	isOptional := configFilename == ""
	if isOptional {
		configFilename = defaultConfigFilename
	}

	readFile := true

	if isOptional {
		exists, err := utils.IsFileExist(configFilename)
		if err != nil {
			return nil, fmt.Errorf("failed to check config file: %w", err)
		}

		readFile = exists
	}

	if readFile {
		v.SetConfigFile(configFilename)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigFileUsed = v.ConfigFileUsed()

	return &cfg, nil
}

// newViper returns a viper instance holding the defaults of every key.
func newViper() *viper.Viper {
	v := viper.New()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigType(configType)

	return v
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.AppName = utils.SanitizeFilename(cfg.AppName)
	if cfg.AppName == "" {
		return ErrEmptyAppName
	}

	if cfg.HistoryMaxItems <= 0 {
		return ErrInvalidHistoryMaxItems
	}

	var parsedMaxFileSize uint64

	maxFileSize := strings.TrimSpace(cfg.MaxFileSize)
	if maxFileSize != "" && maxFileSize != "0" {
		var err error

		parsedMaxFileSize, err = humanize.ParseBytes(maxFileSize)
		if err != nil {
			return fmt.Errorf("failed to parse max file size: %w", err)
		}
	}

	cfg.ParsedMaxFileSize = utils.SafeUint64ToInt64(parsedMaxFileSize)

	return nil
}

// SetConfigValue sets key to value in the YAML file while preserving the original format and order.
// A missing file is created with just this key.
func SetConfigValue(configFile, key, value string) error {
	valueNode, err := newValueNode(key, value)
	if err != nil {
		return err
	}

	// A value that fails validation would stop every later command, config set included.
	if err = validateValue(key, valueNode); err != nil {
		return err
	}

	var node yaml.Node

	originalContent, err := os.ReadFile(filepath.Clean(configFile))

	switch {
	case err == nil:
		// Parse YAML while preserving order using yaml.Node.
		if err = yaml.Unmarshal(originalContent, &node); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	case os.IsNotExist(err):
		if err = os.MkdirAll(filepath.Dir(configFile), constants.DefaultFolderPermissions); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	default:
		return fmt.Errorf("failed to read config file: %w", err)
	}

	setValueInNode(&node, key, valueNode)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// newValueNode builds a scalar node of the type expected for key.
func newValueNode(key, value string) (*yaml.Node, error) {
	defaultValue, ok := defaults()[key]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownConfigKey, key)
	}

	if _, isInt := defaultValue.(int); isInt {
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer, got '%s'", ErrInvalidConfigValue, key, value)
		}

		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: value}, nil
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle}, nil
}

// validateValue checks the value against the defaults of the other keys,
// so a single broken key can always be repaired on its own.
func validateValue(key string, valueNode *yaml.Node) error {
	var document yaml.Node

	setValueInNode(&document, key, valueNode)

	content, err := yaml.Marshal(&document)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	v := newViper()
	if err = v.ReadConfig(bytes.NewReader(content)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfigValue, key, err)
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfigValue, key, err)
	}

	if err = ValidateConfig(&cfg); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfigValue, key, err)
	}

	return nil
}

// setValueInNode replaces the value of key in the YAML node tree or appends the key.
func setValueInNode(node *yaml.Node, key string, valueNode *yaml.Node) {
	// An empty document gets a fresh mapping.
	if node.Kind == 0 {
		node.Kind = yaml.DocumentNode
	}

	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		node.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == key {
			// Keep the comments attached to the old value.
			valueNode.LineComment = mapNode.Content[i+1].LineComment
			mapNode.Content[i+1] = valueNode

			return
		}
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		valueNode)
}
