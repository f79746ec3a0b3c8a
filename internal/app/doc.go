// Package app provides the command executors of pathkit. Each executor wires the configuration,
// the filesystem helpers and the history store together and writes its result to the command output.
package app
