// Package fileutil provides filesystem and text helpers: config, cache and home directory
// resolution, whole-file and line-oriented reads, an ordered deduplicating list builder,
// ASCII case-insensitive search, literal replacement, temporary file creation and path building.
// Every helper works on an injected afero filesystem and Environment, so tests never touch
// the real user directories.
package fileutil
