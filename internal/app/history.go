package app

import (
	"context"

	"github.com/oshokin/pathkit/internal/logger"
)

// ExecuteHistoryAddCommand records lines as the most recent history entries.
func (a *App) ExecuteHistoryAddCommand(ctx context.Context, lines []string) error {
	store, err := a.openHistory(ctx)
	if err != nil {
		return err
	}

	var added int

	for _, line := range lines {
		if store.Add(line) {
			added++
		}
	}

	if added == 0 {
		return ErrNothingToRecord
	}

	if err = store.Save(ctx); err != nil {
		return err
	}

	logger.Debugf(ctx, "Recorded %d entries in %s", added, store.Path())

	return nil
}

// ExecuteHistoryListCommand prints the history from oldest to most recent.
// A non-empty needle keeps only the entries containing it, ignoring ASCII case.
func (a *App) ExecuteHistoryListCommand(ctx context.Context, needle string) error {
	store, err := a.openHistory(ctx)
	if err != nil {
		return err
	}

	for _, entry := range store.Find(needle) {
		a.println(entry.Line)
	}

	return nil
}
