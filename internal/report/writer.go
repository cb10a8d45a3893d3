package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/sentinel/internal/model"
	"github.com/nao1215/sentinel/internal/session"
)

// Suffix is appended to every report file name.
const Suffix = "_report.md"

// Writer saves reports under the sessions of a Store.
type Writer struct {
	store *session.Store
	now   func() time.Time
}

// Option configures a Writer.
type Option func(*Writer)

// WithClock overrides the time source used for the report header.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) {
		w.now = now
	}
}

// NewWriter creates a Writer for the sessions in store.
func NewWriter(store *session.Store, opts ...Option) *Writer {
	w := &Writer{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// FileName returns the report file name for a file and its type label.
// Only the last extension of filename is removed.
func FileName(filename, fileType string) string {
	base, _ := model.SplitExt(filename)
	return base + "_" + fileType + Suffix
}

// Header is the metadata printed above the verdict.
type Header struct {
	FileName  string
	FileType  string
	SessionID string
	Model     string
	Tokens    int
	Findings  []model.Finding
}

// Save writes verdict as the report of filename in session sessionID and
// returns the report path. An existing report with the same name is
// replaced.
func (w *Writer) Save(verdict, filename, fileType, sessionID string) (string, error) {
	return w.write(Header{
		FileName:  filename,
		FileType:  fileType,
		SessionID: sessionID,
	}, verdict)
}

// SaveAnalysis writes the verdict of a finished analysis, including its
// model, token count and local check findings in the header.
func (w *Writer) SaveAnalysis(a *model.Analysis) (string, error) {
	return w.write(Header{
		FileName:  a.FileName,
		FileType:  a.FileType,
		SessionID: a.SessionID,
		Model:     a.Model,
		Tokens:    a.Tokens,
		Findings:  a.Findings,
	}, a.Verdict)
}

func (w *Writer) write(h Header, verdict string) (string, error) {
	dir := w.store.ReportsDir(h.SessionID)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	content, err := render(h, verdict, w.now())
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(h.FileName, h.FileType))
	if err := writeAtomic(dir, path, content); err != nil {
		return "", err
	}
	return path, nil
}

// writeAtomic writes data to a temporary file in dir and renames it to path.
func writeAtomic(dir, path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(dir, ".report-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary report: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	if err = os.Chmod(tmpName, 0600); err != nil {
		return fmt.Errorf("failed to set report permissions: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}
