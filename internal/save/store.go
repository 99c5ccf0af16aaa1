// Package save persists match snapshots between sessions.
package save

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultPath is where the CLI autosaves after each completed turn.
const DefaultPath = "autosave.txt"

// Store reads and writes single-line snapshots.
type Store interface {
	// Save writes the snapshot line, replacing any previous contents.
	Save(snapshot string) error
	// Load returns the stored snapshot line.
	Load() (string, error)
}

// FileStore keeps the snapshot in a plain text file. Only the first line of
// the file is meaningful; anything after it is ignored on load.
type FileStore struct {
	Path string
}

// NewFileStore returns a file-backed store at path, or DefaultPath if path
// is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{Path: path}
}

func (s *FileStore) Save(snapshot string) error {
	if err := os.WriteFile(s.Path, []byte(snapshot+"\n"), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", s.Path, err)
	}
	return nil
}

func (s *FileStore) Load() (string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", s.Path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("load %s: %w", s.Path, err)
		}
		return "", fmt.Errorf("load %s: empty file", s.Path)
	}
	return strings.TrimRight(scanner.Text(), "\r"), nil
}

// MemStore keeps the snapshot in memory. Used by tests and by the web
// server, where each session owns its own store.
type MemStore struct {
	snapshot string
	saved    bool
}

func NewMemStore() *MemStore { return &MemStore{} }

func (s *MemStore) Save(snapshot string) error {
	s.snapshot = snapshot
	s.saved = true
	return nil
}

func (s *MemStore) Load() (string, error) {
	if !s.saved {
		return "", fmt.Errorf("load: no snapshot saved")
	}
	return s.snapshot, nil
}
