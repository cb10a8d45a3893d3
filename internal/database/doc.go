// Package database provides SQLite-based storage for the analysis history.
//
// Every completed analysis appends one row: session, file, file type, token
// count, model, report path and time. The history is a log for the
// "history" command only; sessions are always resumed from the sites
// directory, never from this database.
//
// modernc.org/sqlite is used so the binary stays CGO-free and the database
// is a single file under the XDG data directory.
package database
