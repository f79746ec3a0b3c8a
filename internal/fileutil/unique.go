package fileutil

import (
	"context"
	"slices"
	"strings"
)

// ParseFunc converts a trimmed, non-empty line into a value.
// It returns false when the line should be skipped.
type ParseFunc[T any] func(line string) (T, bool)

// CompareFunc compares two values and returns 0 when they belong to the same equivalence class.
type CompareFunc[T any] func(a, b T) int

// KeyedLine is a line identified by the text before its first separator.
type KeyedLine struct {
	// Key is the text before the first separator, or the whole line when there is no separator.
	Key string
	// Line is the full trimmed line.
	Line string
}

// BuildUniqueList reads path and returns the values parsed from its lines with at most one
// value per equivalence class. The last occurrence of a class wins and the result is
// ordered by the position of each surviving occurrence in the file.
// A file that cannot be read yields an empty list.
func BuildUniqueList[T any](
	ctx context.Context,
	u *Util,
	path string,
	parse ParseFunc[T],
	compare CompareFunc[T],
) []T {
	return UniqueList(u.ReadLines(ctx, path), parse, compare)
}

// UniqueList applies the BuildUniqueList rules to lines that are already in memory.
func UniqueList[T any](lines []string, parse ParseFunc[T], compare CompareFunc[T]) []T {
	result := make([]T, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		value, ok := parse(line)
		if !ok {
			continue
		}

		// The list never holds two equal values, so at most one entry is removed.
		index := slices.IndexFunc(result, func(existing T) bool {
			return compare(value, existing) == 0
		})
		if index != -1 {
			result = slices.Delete(result, index, index+1)
		}

		result = append(result, value)
	}

	return result
}

// KeyedLineParser returns a ParseFunc that splits a line on the first separator.
// An empty separator makes the whole line the key.
func KeyedLineParser(separator string) ParseFunc[KeyedLine] {
	return func(line string) (KeyedLine, bool) {
		key := line

		if separator != "" {
			key, _, _ = strings.Cut(line, separator)
			key = strings.TrimSpace(key)
		}

		if key == "" {
			return KeyedLine{}, false
		}

		return KeyedLine{Key: key, Line: line}, true
	}
}

// CompareKeyedLines compares two keyed lines by key.
func CompareKeyedLines(a, b KeyedLine) int {
	return strings.Compare(a.Key, b.Key)
}
