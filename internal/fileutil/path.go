package fileutil

import (
	"context"
	"strings"

	"github.com/oshokin/pathkit/internal/constants"
	"github.com/oshokin/pathkit/internal/logger"
)

const (
	pathSeparator = "/"
	homePrefix    = "~"
)

// BuildPath resolves path against the home directory or baseDir and makes sure its parent
// directories exist. Absolute paths are returned unchanged, "~/rest" and "~rest" both become
// "<home>/rest", other paths are joined to baseDir, or to the working directory when baseDir
// is empty. The resulting file itself is not created.
func (u *Util) BuildPath(ctx context.Context, path, baseDir string) string {
	var fullPath string

	switch {
	case strings.HasPrefix(path, pathSeparator):
		fullPath = path
	case strings.HasPrefix(path, homePrefix+pathSeparator):
		fullPath = u.HomeDir() + path[len(homePrefix):]
	case strings.HasPrefix(path, homePrefix):
		fullPath = u.HomeDir() + pathSeparator + path[len(homePrefix):]
	case baseDir != "":
		fullPath = baseDir + pathSeparator + path
	default:
		fullPath = u.workingDir() + pathSeparator + path
	}

	// Parent creation is best effort, the caller sees the failure when it uses the path.
	if index := strings.LastIndex(fullPath, pathSeparator); index > 0 {
		parent := fullPath[:index]
		if err := u.fs.MkdirAll(parent, constants.PrivateFolderPermissions); err != nil {
			logger.Warnf(ctx, "Failed to create parent directories of %s: %v", fullPath, err)
		}
	}

	return fullPath
}

func (u *Util) workingDir() string {
	dir, err := u.env.Getwd()
	if err != nil || dir == "" {
		return "."
	}

	return dir
}
