// Package tui renders portfolio summaries for the terminal.
package tui
