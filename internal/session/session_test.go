package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, _ := Load(path)
	s.Record(Entry{Path: "a.go", Line: 3, Column: 7})
	s.Record(Entry{Path: "b.go", Line: 1})
	if err := s.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	entries := loaded.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Path != "b.go" || entries[0].Line != 1 || entries[0].Column != 0 {
		t.Errorf("entries[0] = %+v, want b.go:1:0", entries[0])
	}
	if entries[1].Path != "a.go" || entries[1].Line != 3 || entries[1].Column != 7 {
		t.Errorf("entries[1] = %+v, want a.go:3:7", entries[1])
	}
}

func TestRecordReplacesSamePath(t *testing.T) {
	s, _ := Load(filepath.Join(t.TempDir(), "session.json"))
	s.Record(Entry{Path: "a.go", Line: 1})
	s.Record(Entry{Path: "b.go", Line: 2})
	s.Record(Entry{Path: "a.go", Line: 9, Column: 3})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	entries := s.Entries()
	if entries[0].Path != "a.go" || entries[0].Line != 9 || entries[0].Column != 3 {
		t.Errorf("entries[0] = %+v, want a.go:9:3", entries[0])
	}
	if entries[1].Path != "b.go" {
		t.Errorf("entries[1].Path = %q, want b.go", entries[1].Path)
	}
}

func TestRecordCapsEntries(t *testing.T) {
	s, _ := Load(filepath.Join(t.TempDir(), "session.json"))
	for i := 0; i < 60; i++ {
		s.Record(Entry{Path: fmt.Sprintf("file%d.go", i), Line: i})
	}

	if s.Len() != maxEntries {
		t.Fatalf("Len() = %d, want %d", s.Len(), maxEntries)
	}
	if got := s.Entries()[0].Path; got != "file59.go" {
		t.Errorf("newest entry = %q, want file59.go", got)
	}
	if _, ok := s.Lookup("file9.go"); ok {
		t.Error("file9.go survived the cap, want evicted")
	}
	if _, ok := s.Lookup("file10.go"); !ok {
		t.Error("file10.go missing, want kept")
	}
}

func TestLookup(t *testing.T) {
	s, _ := Load(filepath.Join(t.TempDir(), "session.json"))
	s.Record(Entry{Path: "main.go", Line: 12, Column: 4})

	e, ok := s.Lookup("main.go")
	if !ok {
		t.Fatal("Lookup(main.go) = false, want true")
	}
	if e.Line != 12 || e.Column != 4 {
		t.Errorf("entry = %+v, want line 12 column 4", e)
	}
	if _, ok := s.Lookup("other.go"); ok {
		t.Error("Lookup(other.go) = true, want false")
	}
}

func TestLoadCapsOversizedFile(t *testing.T) {
	var b strings.Builder
	b.WriteString(`{"files":[`)
	for i := 0; i < 60; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"path":"f%d.go","line":1,"column":0}`, i)
	}
	b.WriteString("]}")

	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Len() != maxEntries {
		t.Errorf("Len() = %d, want %d", s.Len(), maxEntries)
	}
}

func TestLoadSkipsEntriesWithoutPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	content := `{"files":[{"line":4,"column":2},{"path":"kept.go","line":1,"column":0}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if got := s.Entries()[0].Path; got != "kept.go" {
		t.Errorf("entry path = %q, want kept.go", got)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "gust", "session.json")

	s, _ := Load(path)
	s.Record(Entry{Path: "x.go"})
	if err := s.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("session file missing: %v", err)
	}
}
