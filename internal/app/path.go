package app

import "context"

// ExecutePathCommand prints the path built from path and baseDir.
// An empty baseDir falls back to the configured base directory.
func (a *App) ExecutePathCommand(ctx context.Context, path, baseDir string) {
	if baseDir == "" {
		baseDir = a.cfg.BaseDir
	}

	a.println(a.util.BuildPath(ctx, path, baseDir))
}
