package app

import (
	"context"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/pathkit/internal/logger"
)

// ExecuteTempCommand writes content to a new temporary file and prints its path.
// The file is left in place for the caller.
func (a *App) ExecuteTempCommand(ctx context.Context, content string) error {
	path, err := a.util.CreateTempFile(content)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Wrote %s to %s", humanize.Bytes(uint64(len(content))), path)
	a.println(path)

	return nil
}
