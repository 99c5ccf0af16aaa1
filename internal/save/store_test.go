package save

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "autosave.txt")
	s := NewFileStore(path)

	const snapshot = "20,0,3;C,S;M|W,2,1|15,5,4;R;C|"
	if err := s.Save(snapshot); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != snapshot {
		t.Errorf("loaded %q, want %q", got, snapshot)
	}
}

func TestFileStoreReadsOnlyTheFirstLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.txt")
	content := "first line\nsecond line\nthird line\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "first line" {
		t.Errorf("loaded %q, want just the first line", got)
	}
}

func TestFileStoreOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.txt")
	s := NewFileStore(path)

	s.Save("old state")
	s.Save("new state")

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "new state" {
		t.Errorf("loaded %q, want the newer save", got)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope.txt"))
	if _, err := s.Load(); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("loading an empty file should fail")
	}
}

func TestFileStoreDefaultsPath(t *testing.T) {
	if NewFileStore("").Path != DefaultPath {
		t.Errorf("empty path should default to %s", DefaultPath)
	}
}

func TestMemStore(t *testing.T) {
	s := NewMemStore()
	if _, err := s.Load(); err == nil {
		t.Error("loading before any save should fail")
	}

	s.Save("state")
	got, err := s.Load()
	if err != nil || got != "state" {
		t.Errorf("got %q, %v", got, err)
	}
}
