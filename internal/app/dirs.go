package app

import (
	"context"

	"github.com/oshokin/pathkit/internal/logger"
)

// ExecuteDirsCommand prints the config, cache and home directories.
// The config and cache directories are created when they are missing.
func (a *App) ExecuteDirsCommand(ctx context.Context) {
	a.printf("config\t%s\n", a.util.ConfigDir(ctx))
	a.printf("cache\t%s\n", a.util.CacheDir(ctx))
	a.printf("home\t%s\n", a.util.HomeDir())
}

// ExecuteMkdirCommand creates every directory that does not exist yet.
func (a *App) ExecuteMkdirCommand(ctx context.Context, dirs []string) error {
	for _, dir := range dirs {
		if err := a.util.CreateDirIfNotExists(dir); err != nil {
			return err
		}

		logger.Debugf(ctx, "Directory %s is ready", dir)
	}

	return nil
}

// ExecuteTouchCommand creates every file that does not exist yet without touching existing content.
func (a *App) ExecuteTouchCommand(ctx context.Context, files []string) error {
	for _, file := range files {
		if err := a.util.CreateFileIfNotExists(file); err != nil {
			return err
		}

		logger.Debugf(ctx, "File %s is ready", file)
	}

	return nil
}
