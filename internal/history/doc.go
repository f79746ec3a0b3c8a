// Package history keeps a bounded, line-oriented history file in which every key appears
// once and the most recently recorded entry of a key wins.
package history
