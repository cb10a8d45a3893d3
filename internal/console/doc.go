// Package console is the operator-facing surface of the interactive loop.
//
// Terminal reads one line per prompt from an injected reader and writes
// styled output to an injected writer, so the whole loop can be driven by
// a script in tests. Tables are rendered with lipgloss/table and analysis
// verdicts, which are Markdown, with glamour. With plain output enabled
// (or a writer that is not a terminal) no ANSI sequences are emitted.
package console
