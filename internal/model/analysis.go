package model

import "time"

// Analysis carries one file through the analyze-and-report cycle.
// Each pipeline step reads what earlier steps filled in and adds its own
// part.
type Analysis struct {
	// SessionID is the session the file belongs to.
	SessionID string

	// FileName is the base name of the analyzed file.
	FileName string

	// FilePath is the full path of the analyzed file.
	FilePath string

	// FileType is the label sent to the analysis service ("js", "html", ...).
	FileType string

	// Model is the analysis model name.
	Model string

	// Tokens is the unit count of Content.
	Tokens int

	// Content is the decoded file text.
	Content string

	// Findings are the local pattern matches in Content.
	Findings []Finding

	// Verdict is the free-text answer of the analysis service.
	Verdict string

	// ReportPath is where the verdict was saved.
	ReportPath string

	// StartedAt is when the cycle began.
	StartedAt time.Time

	// PerformedSteps lists the pipeline steps that completed, in order.
	PerformedSteps []string
}

// NewAnalysis creates an Analysis for one session file.
func NewAnalysis(sessionID, fileName, filePath, fileType string) *Analysis {
	return &Analysis{
		SessionID:      sessionID,
		FileName:       fileName,
		FilePath:       filePath,
		FileType:       fileType,
		StartedAt:      time.Now(),
		PerformedSteps: make([]string, 0),
	}
}

// HistoryEntry is a finished analysis as stored in the history database.
type HistoryEntry struct {
	ID         int64     `json:"id"`
	SessionID  string    `json:"session_id"`
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type"`
	Tokens     int       `json:"tokens"`
	Model      string    `json:"model"`
	ReportPath string    `json:"report_path"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// HistoryEntryFrom builds the history record of a completed analysis.
func HistoryEntryFrom(a *Analysis) *HistoryEntry {
	return &HistoryEntry{
		SessionID:  a.SessionID,
		FileName:   a.FileName,
		FileType:   a.FileType,
		Tokens:     a.Tokens,
		Model:      a.Model,
		ReportPath: a.ReportPath,
		AnalyzedAt: a.StartedAt,
	}
}
