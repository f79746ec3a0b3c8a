package history

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"

	"github.com/oshokin/pathkit/internal/constants"
	"github.com/oshokin/pathkit/internal/fileutil"
	"github.com/oshokin/pathkit/internal/logger"
)

const (
	lineSeparator   = "\n"
	tempFilePattern = ".tmp-*"
)

// Entry is a single history line identified by its key.
type Entry = fileutil.KeyedLine

// Static error definitions for better error handling.
var (
	// ErrInvalidMaxItems indicates that the history capacity is not positive.
	ErrInvalidMaxItems = errors.New("history max items must be a positive integer")
)

// Store is a bounded history backed by a file.
// The oldest entries are evicted once the capacity is reached.
type Store struct {
	// util provides file access and path building.
	util *fileutil.Util
	// path is the history file location.
	path string
	// parse turns a line into an entry.
	parse fileutil.ParseFunc[Entry]
	// entries holds the entries ordered from oldest to most recent.
	entries *lru.Cache[string, Entry]
}

// Open loads the history stored at path keeping at most maxItems of the most recent entries.
// A missing file results in an empty history, any other read failure is returned.
func Open(ctx context.Context, util *fileutil.Util, path, separator string, maxItems int) (*Store, error) {
	if maxItems <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxItems, maxItems)
	}

	entries, err := lru.New[string, Entry](maxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create history cache: %w", err)
	}

	s := &Store{
		util:    util,
		path:    path,
		parse:   fileutil.KeyedLineParser(separator),
		entries: entries,
	}

	// A history that exists but cannot be read must not be replaced by an empty one on Save.
	content, err := util.ReadFileContents(path)
	if errors.Is(err, fileutil.ErrFileNotFound) {
		return s, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	// The unique list is already ordered by last occurrence, so adding in order
	// leaves the most recent entries in the cache.
	for _, entry := range fileutil.UniqueList(splitLines(content), s.parse, fileutil.CompareKeyedLines) {
		s.entries.Add(entry.Key, entry)
	}

	logger.Debugf(ctx, "Loaded %d history entries from %s", s.entries.Len(), path)

	return s, nil
}

// Path returns the history file location.
func (s *Store) Path() string {
	return s.path
}

// Add records line as the most recent entry and reports whether it was accepted.
// Recording an existing key replaces its line and moves it to the end.
func (s *Store) Add(line string) bool {
	entry, ok := s.parse(strings.TrimSpace(line))
	if !ok {
		return false
	}

	// Remove first so that the entry always becomes the most recent one.
	s.entries.Remove(entry.Key)
	s.entries.Add(entry.Key, entry)

	return true
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return s.entries.Len()
}

// Entries returns the entries ordered from oldest to most recent.
func (s *Store) Entries() []Entry {
	return s.entries.Values()
}

// Find returns the entries whose line contains needle, ignoring ASCII case.
func (s *Store) Find(needle string) []Entry {
	result := make([]Entry, 0)

	for _, entry := range s.entries.Values() {
		if fileutil.CaseInsensitiveFind(entry.Line, needle) != -1 {
			result = append(result, entry)
		}
	}

	return result
}

// Save writes the entries back to the history file, one per line,
// creating its parent directories when needed.
// The entries go to a temporary file first, which then replaces the history file.
func (s *Store) Save(ctx context.Context) error {
	path := s.util.BuildPath(ctx, s.path, "")
	fs := s.util.Fs()

	tempFile, err := afero.TempFile(fs, filepath.Dir(path), filepath.Base(path)+tempFilePattern)
	if err != nil {
		return fmt.Errorf("failed to create temporary history file for %s: %w", path, err)
	}

	tempPath := tempFile.Name()

	var builder strings.Builder
	for _, entry := range s.entries.Values() {
		builder.WriteString(entry.Line)
		builder.WriteByte('\n')
	}

	_, err = tempFile.WriteString(builder.String())
	if closeErr := tempFile.Close(); err == nil {
		err = closeErr
	}

	if err == nil {
		err = fs.Chmod(tempPath, constants.DefaultFilePermissions)
	}

	if err == nil {
		err = fs.Rename(tempPath, path)
	}

	if err != nil {
		_ = fs.Remove(tempPath)

		return fmt.Errorf("failed to write history file %s: %w", path, err)
	}

	return nil
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	return strings.Split(string(content), lineSeparator)
}
