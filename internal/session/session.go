// Package session persists the recently visited file list across runs.
//
// The session file is JSON, {"files":[{"path":…,"line":…,"column":…}]},
// most recent first, capped at 50 entries. Loading tolerates a missing or
// corrupt file by starting empty.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const maxEntries = 50

// Entry records the primary cursor position of a visited file.
type Entry struct {
	Path   string `json:"path"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Store holds the session entries and the file they persist to.
type Store struct {
	path    string
	entries []Entry
}

// DefaultPath returns the standard session file location,
// $XDG_STATE_HOME/gust/session.json or ~/.local/state/gust/session.json.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "gust", "session.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "gust", "session.json")
}

// Load reads the session file at path. It always returns a usable Store;
// the error reports why previous state was unavailable, and is nil when
// the file simply does not exist yet or holds invalid JSON.
func Load(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading session %s: %w", path, err)
	}

	s.entries = parse(data)
	return s, nil
}

func parse(data []byte) []Entry {
	if !gjson.ValidBytes(data) {
		return nil
	}

	var entries []Entry
	gjson.GetBytes(data, "files").ForEach(func(_, item gjson.Result) bool {
		path := item.Get("path").String()
		if path == "" {
			return true
		}
		entries = append(entries, Entry{
			Path:   path,
			Line:   int(item.Get("line").Int()),
			Column: int(item.Get("column").Int()),
		})
		return len(entries) < maxEntries
	})
	return entries
}

// Record inserts e at the front, replacing any entry for the same path.
func (s *Store) Record(e Entry) {
	for i, old := range s.entries {
		if old.Path == e.Path {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	s.entries = append([]Entry{e}, s.entries...)
	if len(s.entries) > maxEntries {
		s.entries = s.entries[:maxEntries]
	}
}

// Lookup returns the recorded entry for path, if any.
func (s *Store) Lookup(path string) (Entry, bool) {
	for _, e := range s.entries {
		if e.Path == path {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns the session entries, most recent first.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of recorded entries.
func (s *Store) Len() int { return len(s.entries) }

// Save writes the session file, creating its directory as needed. The
// write goes through a temp file and rename so a crash mid-write cannot
// corrupt the previous session.
func (s *Store) Save() error {
	entries := s.entries
	if entries == nil {
		entries = []Entry{}
	}

	out, err := sjson.SetBytes([]byte(`{}`), "files", entries)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, out, 0o644); err != nil {
		return fmt.Errorf("writing session %s: %w", tempPath, err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replacing session %s: %w", s.path, err)
	}
	return nil
}
