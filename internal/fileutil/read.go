package fileutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/oshokin/pathkit/internal/logger"
	"github.com/oshokin/pathkit/internal/utils"
)

const (
	// File options for creating a file without touching existing content.
	appendFileOptions = os.O_CREATE | os.O_APPEND | os.O_WRONLY

	// File options for creating a new file (fails if the file already exists).
	createNewFileOptions = os.O_CREATE | os.O_EXCL | os.O_WRONLY

	lineSeparator = "\n"
)

// ReadFileContents returns the whole content of path if it is a regular file.
// Every returned error names the path and wraps the cause.
func (u *Util) ReadFileContents(path string) ([]byte, error) {
	info, err := u.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cannot open %s: %w", path, ErrFileNotFound)
		}

		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("cannot open %s: %w", path, ErrNotRegularFile)
	}

	if u.maxFileSize > 0 && info.Size() > u.maxFileSize {
		return nil, fmt.Errorf("cannot open %s: %w: %s exceeds the limit of %s",
			path,
			ErrFileTooLarge,
			humanize.Bytes(utils.SafeInt64ToUint64(info.Size())),
			humanize.Bytes(utils.SafeInt64ToUint64(u.maxFileSize)))
	}

	content, err := afero.ReadFile(u.fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}

	return content, nil
}

// ReadLines returns the content of path split on newlines.
// A trailing newline yields a final empty element.
// When the file cannot be read the error is logged and an empty slice is returned.
func (u *Util) ReadLines(ctx context.Context, path string) []string {
	content, err := u.ReadFileContents(path)
	if err != nil {
		logger.Errorf(ctx, "%v", err)

		return []string{}
	}

	if len(content) == 0 {
		return []string{}
	}

	return strings.Split(string(content), lineSeparator)
}
