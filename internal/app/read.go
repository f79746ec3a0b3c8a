package app

import (
	"context"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/pathkit/internal/fileutil"
	"github.com/oshokin/pathkit/internal/logger"
	"github.com/oshokin/pathkit/internal/utils"
)

// ExecuteCatCommand writes the content of path to the output.
// With showSize the size of the file is logged as well.
func (a *App) ExecuteCatCommand(ctx context.Context, path string, showSize bool) error {
	content, err := a.util.ReadFileContents(path)
	if err != nil {
		return err
	}

	if _, err = a.out.Write(content); err != nil {
		return err
	}

	if showSize {
		logger.Infof(ctx, "%s: %s", path, humanize.Bytes(uint64(len(content))))
	}

	return nil
}

// ExecuteLinesCommand prints the lines of path prefixed with their 1-based number.
// An unreadable file is reported and prints nothing.
func (a *App) ExecuteLinesCommand(ctx context.Context, path string) {
	for i, line := range a.util.ReadLines(ctx, path) {
		a.printf("%d\t%s\n", i+1, line)
	}
}

// ExecuteUniqueCommand prints the lines of path keeping only the last line of every key.
// The key is the text before the first separator.
func (a *App) ExecuteUniqueCommand(ctx context.Context, path, separator string) {
	entries := fileutil.BuildUniqueList(ctx, a.util, path,
		fileutil.KeyedLineParser(separator),
		fileutil.CompareKeyedLines)

	for _, line := range utils.Map(entries, keyedLineText) {
		a.println(line)
	}

	logger.Debugf(ctx, "%d unique lines in %s", len(entries), path)
}

func keyedLineText(entry fileutil.KeyedLine) string {
	return entry.Line
}
