package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/oshokin/pathkit/internal/config"
	"github.com/oshokin/pathkit/internal/constants"
	"github.com/oshokin/pathkit/internal/fileutil"
	"github.com/oshokin/pathkit/internal/history"
	"github.com/oshokin/pathkit/internal/utils"
)

// Static error definitions for better error handling.
var (
	// ErrNothingToRecord indicates that no line was accepted by the history.
	ErrNothingToRecord = errors.New("nothing to record")
)

// App executes pathkit commands.
type App struct {
	// cfg is the validated configuration.
	cfg *config.Config
	// util provides the filesystem and text helpers.
	util *fileutil.Util
	// out receives the command results.
	out io.Writer
	// highlight marks matches in find results.
	highlight *color.Color
}

// New creates an App writing its results to out.
func New(cfg *config.Config, util *fileutil.Util, out io.Writer) *App {
	return &App{
		cfg:       cfg,
		util:      util,
		out:       out,
		highlight: color.New(color.FgRed, color.Bold),
	}
}

// NewFromConfig creates an App backed by the real filesystem and configured by cfg.
func NewFromConfig(cfg *config.Config, out io.Writer) *App {
	util := fileutil.NewOS(
		fileutil.WithAppName(cfg.AppName),
		fileutil.WithMaxFileSize(cfg.ParsedMaxFileSize))

	return New(cfg, util, out)
}

// openHistory opens the configured history file.
func (a *App) openHistory(ctx context.Context) (*history.Store, error) {
	path := a.cfg.HistoryFile
	if path == "" {
		path = filepath.Join(a.util.ConfigDir(ctx), constants.DefaultHistoryFilename)
	} else {
		path = a.util.BuildPath(ctx, path, a.cfg.BaseDir)
	}

	store, err := history.Open(ctx, a.util, path, a.cfg.KeySeparator, utils.SafeInt64ToInt(a.cfg.HistoryMaxItems))
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}

	return store, nil
}

func (a *App) println(args ...any) {
	_, _ = fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
