package app

import (
	"context"

	"github.com/oshokin/pathkit/internal/config"
	"github.com/oshokin/pathkit/internal/logger"
)

// ExecuteConfigSetCommand stores value under key in configFile.
func (a *App) ExecuteConfigSetCommand(ctx context.Context, configFile, key, value string) error {
	if err := config.SetConfigValue(configFile, key, value); err != nil {
		return err
	}

	logger.Infof(ctx, "Set %s in %s", key, configFile)

	return nil
}

// ExecuteConfigKeysCommand prints the configuration keys.
func (a *App) ExecuteConfigKeysCommand(_ context.Context) {
	for _, key := range config.Keys() {
		a.println(key)
	}
}
