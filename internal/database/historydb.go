package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/sentinel/internal/model"
)

// FileName is the name of the database file inside the database directory.
const FileName = "history.db"

// HistoryDB stores completed analyses.
type HistoryDB struct {
	db     *sql.DB
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the history database in dbDir.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	var dsn string
	if opts.CreateIfNotExists {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = dbPath + "?mode=rwc"
	} else {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Path returns the database file path.
func (h *HistoryDB) Path() string {
	return h.dbPath
}

// Close closes the database connection.
func (h *HistoryDB) Close() error {
	return h.db.Close()
}

func (h *HistoryDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		file_name TEXT NOT NULL,
		file_type TEXT NOT NULL,
		tokens INTEGER NOT NULL DEFAULT 0,
		model TEXT,
		report_path TEXT,
		analyzed_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_session ON analyses(session_id);
	CREATE INDEX IF NOT EXISTS idx_analyses_time ON analyses(analyzed_at);
	`

	_, err := h.db.ExecContext(context.Background(), schema)
	return err
}

// InsertAnalysis appends entry and returns its row ID. entry.ID is set.
func (h *HistoryDB) InsertAnalysis(ctx context.Context, entry *model.HistoryEntry) (int64, error) {
	if entry.AnalyzedAt.IsZero() {
		entry.AnalyzedAt = time.Now()
	}

	query := `
	INSERT INTO analyses (session_id, file_name, file_type, tokens, model, report_path, analyzed_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := h.db.ExecContext(ctx, query,
		entry.SessionID,
		entry.FileName,
		entry.FileType,
		entry.Tokens,
		entry.Model,
		entry.ReportPath,
		entry.AnalyzedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get analysis id: %w", err)
	}
	entry.ID = id
	return id, nil
}

// ListAnalyses returns the most recent analyses first. An empty sessionID
// matches every session; a limit of zero or less returns all rows.
func (h *HistoryDB) ListAnalyses(ctx context.Context, sessionID string, limit int) ([]*model.HistoryEntry, error) {
	query := `
	SELECT id, session_id, file_name, file_type, tokens, model, report_path, analyzed_at
	FROM analyses
	WHERE (? = '' OR session_id = ?)
	ORDER BY id DESC
	`
	args := []any{sessionID, sessionID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	entries := make([]*model.HistoryEntry, 0)
	for rows.Next() {
		var (
			e          model.HistoryEntry
			modelName  sql.NullString
			reportPath sql.NullString
			analyzedAt string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.FileName, &e.FileType, &e.Tokens, &modelName, &reportPath, &analyzedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		e.Model = modelName.String
		e.ReportPath = reportPath.String
		e.AnalyzedAt = parseTimestamp(analyzedAt)
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

// ListSessions returns the distinct sessions with recorded analyses.
func (h *HistoryDB) ListSessions(ctx context.Context) ([]string, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT DISTINCT session_id FROM analyses ORDER BY session_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// timestampFormats contains the timestamp formats that may be stored.
// More specific formats come first.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// parseTimestamp returns the zero time when no format matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
