package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/guestlist/internal/store"
)

func writeBook(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "addressbook.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWithStore_ReusesUnchangedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeBook(t, dir, `{"persons":[{"name":"A","status":"c","tagged":["x"]}]}`)

	st, err := store.Open(filepath.Join(dir, "contacts.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = st.Close() }()

	first, err := LoadWithStore(path, st)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if first.FromStore {
		t.Error("first load should parse the file")
	}

	second, err := LoadWithStore(path, st)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if !second.FromStore {
		t.Error("second load should come from the store")
	}
	if len(second.Contacts) != 1 || second.Contacts[0].Tags[0] != "x" {
		t.Errorf("stored contacts = %+v", second.Contacts)
	}
}

func TestLoadWithStore_ReimportsChangedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeBook(t, dir, `{"persons":[{"name":"A","status":"c"}]}`)

	st, err := store.Open(filepath.Join(dir, "contacts.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = st.Close() }()

	if _, err := LoadWithStore(path, st); err != nil {
		t.Fatal(err)
	}

	writeBook(t, dir, `{"persons":[{"name":"A","status":"c"},{"name":"B","status":"d"}]}`)
	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}

	result, err := LoadWithStore(path, st)
	if err != nil {
		t.Fatal(err)
	}
	if result.FromStore {
		t.Error("changed file should be reparsed")
	}
	if len(result.Contacts) != 2 {
		t.Errorf("len(Contacts) = %d, want 2", len(result.Contacts))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
