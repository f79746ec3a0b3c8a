package fileutil

import (
	"github.com/spf13/afero"

	"github.com/oshokin/pathkit/internal/constants"
	"github.com/oshokin/pathkit/internal/utils"
)

// Util bundles the dependencies shared by the filesystem helpers.
// It carries no mutable state, so a single value may be used from several goroutines.
type Util struct {
	// fs is the filesystem every helper reads from and writes to.
	fs afero.Fs
	// env provides home, config, cache, working and temporary directories.
	env Environment
	// appName is the namespace used for config and cache directories and temporary file names.
	appName string
	// maxFileSize limits ReadFileContents, 0 means unlimited.
	maxFileSize int64
}

// Option customizes a Util created by New.
type Option func(*Util)

// WithAppName sets the namespace used for config and cache directories and temporary file names.
func WithAppName(name string) Option {
	return func(u *Util) {
		if name = utils.SanitizeFilename(name); name != "" {
			u.appName = name
		}
	}
}

// WithMaxFileSize limits the size of files returned by ReadFileContents.
// Zero or a negative value disables the limit.
func WithMaxFileSize(size int64) Option {
	return func(u *Util) {
		u.maxFileSize = max(size, 0)
	}
}

// New creates a Util working on the given filesystem and environment.
func New(fs afero.Fs, env Environment, options ...Option) *Util {
	u := &Util{
		fs:      fs,
		env:     env,
		appName: constants.AppName,
	}

	for _, option := range options {
		option(u)
	}

	return u
}

// NewOS creates a Util backed by the real filesystem and process environment.
func NewOS(options ...Option) *Util {
	return New(afero.NewOsFs(), NewOSEnvironment(), options...)
}

// Fs returns the filesystem the helpers work on.
func (u *Util) Fs() afero.Fs {
	return u.fs
}
