// Package model defines the data structures shared by the sentinel packages.
//
// This package contains the following main types:
//   - FileEntry: a session file with its token count, used for ranking
//   - Analysis: the state of one analyze-and-report cycle for one file
//   - HistoryEntry: a finished analysis as recorded in the history database
package model
