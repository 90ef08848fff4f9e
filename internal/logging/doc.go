// Package logging provides a unified logging interface for the sequence generator.
// It abstracts the underlying logging implementation, allowing consistent logging
// across components while supporting multiple backends.
//
// Diagnostics only: text meant for the user (sequences, statistics, prompts)
// is written by the presentation packages, never through a Logger.
package logging
