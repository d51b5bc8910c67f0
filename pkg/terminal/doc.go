// Package terminal connects the engine to real terminals.
//
// Screen drives a full-screen tcell session: it flushes render buffers cell
// by cell, sending only what changed since the previous flush, and decodes
// tcell events into pkg/input values. Inline prints frames into a plain
// writer with lipgloss styling, for output that should stay in the
// scrollback.
package terminal
