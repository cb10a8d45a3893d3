package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ReportsDirName is the name of the per-session reports subdirectory.
const ReportsDirName = "reports"

// Store is a read-mostly view over the sessions root directory.
// Nothing is cached; every call reflects the filesystem at call time.
type Store struct {
	root string
}

// NewStore creates a Store rooted at root. The directory is not created
// until EnsureRoot is called.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the sessions root directory.
func (s *Store) Root() string {
	return s.root
}

// EnsureRoot creates the sessions root if it does not exist.
func (s *Store) EnsureRoot() error {
	if err := os.MkdirAll(s.root, 0750); err != nil {
		return fmt.Errorf("failed to create sessions directory: %w", err)
	}
	return nil
}

// Dir returns the directory of the session id.
func (s *Store) Dir(id string) string {
	return filepath.Join(s.root, id)
}

// ReportsDir returns the reports directory of the session id.
func (s *Store) ReportsDir(id string) string {
	return filepath.Join(s.root, id, ReportsDirName)
}

// Exists reports whether the session directory exists.
func (s *Store) Exists(id string) bool {
	info, err := os.Stat(s.Dir(id))
	return err == nil && info.IsDir()
}

// ListSessions returns the names of the immediate subdirectories of the
// sessions root, sorted by name. A missing root yields an empty list.
func (s *Store) ListSessions() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]string, 0, len(entries))
	for _, entry := range entries {
		if s.isDir(s.root, entry) {
			sessions = append(sessions, entry.Name())
		}
	}
	sort.Strings(sessions)
	return sessions, nil
}

// ListFiles returns the names of the regular files directly inside the
// session id. Subdirectories, including reports/, are not listed.
func (s *Store) ListFiles(id string) ([]string, error) {
	dir := s.Dir(id)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("failed to list files of session %s: %w", id, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if s.isFile(dir, entry) {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// isDir reports whether entry is a directory, following symlinks.
func (s *Store) isDir(parent string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}

// isFile reports whether entry is a regular file, following symlinks.
func (s *Store) isFile(parent string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}
