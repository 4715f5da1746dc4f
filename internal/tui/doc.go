// Package tui holds the interactive terminal components used by the CLI.
//
// Components are bubbletea models. They are only started when both stdin and
// stderr are terminals; every caller has a non-interactive path.
package tui
