package app

import (
	"context"

	"github.com/oshokin/pathkit/internal/fileutil"
	"github.com/oshokin/pathkit/internal/logger"
)

const notFoundMessage = "not found"

// ExecuteFindCommand prints the offset of needle in haystack, ignoring ASCII case,
// followed by the haystack with the match highlighted.
func (a *App) ExecuteFindCommand(ctx context.Context, haystack, needle string) {
	index := fileutil.CaseInsensitiveFind(haystack, needle)
	if index == -1 {
		logger.Debugf(ctx, "'%s' does not occur in '%s'", needle, haystack)
		a.println(notFoundMessage)

		return
	}

	end := index + len(needle)

	a.println(index)
	a.println(haystack[:index] + a.highlight.Sprint(haystack[index:end]) + haystack[end:])
}

// ExecuteReplaceCommand prints text with every occurrence of search replaced.
func (a *App) ExecuteReplaceCommand(_ context.Context, search, replace, text string) {
	a.printf("%s", fileutil.ReplaceAll(search, replace, text))
}
