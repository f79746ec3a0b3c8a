package fileutil

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/oshokin/pathkit/internal/constants"
	"github.com/oshokin/pathkit/internal/logger"
)

const homeEnvironmentVariable = "HOME"

// ConfigDir returns the application config directory and creates it if it is missing.
// Creation is best effort: a failure is logged and the path is still returned.
func (u *Util) ConfigDir(ctx context.Context) string {
	return u.ensureAppDir(ctx, u.env.UserConfigDir, ".config")
}

// CacheDir returns the application cache directory and creates it if it is missing.
// Creation is best effort: a failure is logged and the path is still returned.
func (u *Util) CacheDir(ctx context.Context) string {
	return u.ensureAppDir(ctx, u.env.UserCacheDir, ".cache")
}

// HomeDir returns the user's home directory.
// The HOME environment variable wins over the platform-reported directory.
// An empty string is returned when neither is available.
func (u *Util) HomeDir() string {
	if home := u.env.Getenv(homeEnvironmentVariable); home != "" {
		return home
	}

	home, err := u.env.UserHomeDir()
	if err != nil {
		return ""
	}

	return home
}

// CreateDirIfNotExists creates dir and its parents unless dir already is a directory.
func (u *Util) CreateDirIfNotExists(dir string) error {
	isDir, err := afero.IsDir(u.fs, dir)
	if err == nil && isDir {
		return nil
	}

	if err = u.fs.MkdirAll(dir, constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return nil
}

// CreateFileIfNotExists creates an empty file unless filename already is a regular file.
// Existing content is never truncated.
func (u *Util) CreateFileIfNotExists(filename string) error {
	info, err := u.fs.Stat(filename)
	if err == nil && info.Mode().IsRegular() {
		return nil
	}

	file, err := u.fs.OpenFile(filename, appendFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filename, err)
	}

	return file.Close()
}

func (u *Util) ensureAppDir(ctx context.Context, baseDir func() (string, error), homeFallback string) string {
	base, err := baseDir()
	if err != nil || base == "" {
		base = filepath.Join(u.HomeDir(), homeFallback)
	}

	dir := filepath.Join(base, u.appName)

	if err = u.CreateDirIfNotExists(dir); err != nil {
		logger.Warnf(ctx, "%v", err)
	}

	return dir
}
