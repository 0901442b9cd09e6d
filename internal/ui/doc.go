// Package ui groups gx's terminal presentation.
//
//   - styles: shared lipgloss colors and styles
//   - static: non-interactive rendering (the operation table)
//   - prompt: the y/N confirmation shown by "gx install"
//
// git's own output is never restyled; gx streams it through unchanged.
package ui
