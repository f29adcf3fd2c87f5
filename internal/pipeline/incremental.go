package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/guestlist/internal/source"
	"github.com/theirongolddev/guestlist/internal/store"
)

// LoadWithStore returns the stored contacts when path is unchanged since its
// last import, and otherwise parses path and refreshes the store.
func LoadWithStore(path string, st *store.Store) (*LoadResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	tracked, ok, err := st.TrackedFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading store: %w", err)
	}
	if ok && tracked.MtimeNs == info.ModTime().UnixNano() && tracked.SizeBytes == info.Size() {
		contacts, err := st.LoadAllContacts()
		if err != nil {
			return nil, fmt.Errorf("loading stored contacts: %w", err)
		}
		return &LoadResult{Contacts: contacts, FromStore: true}, nil
	}

	return Import(abs, st)
}

// Import parses path and replaces the stored address book with it.
func Import(path string, st *store.Store) (*LoadResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	pr := source.ParseFile(abs)
	if pr.Err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, pr.Err)
	}

	fi := store.FileInfo{MtimeNs: info.ModTime().UnixNano(), SizeBytes: info.Size()}
	if err := st.ReplaceContacts(abs, pr.Contacts, fi); err != nil {
		return nil, fmt.Errorf("saving contacts: %w", err)
	}

	return &LoadResult{Contacts: pr.Contacts, ParseErrors: pr.ParseErrors}, nil
}

// StoreDir returns the platform-appropriate data directory.
func StoreDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "guestlist")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "guestlist")
}

// StorePath returns the full path to the contact database.
func StorePath() string {
	return filepath.Join(StoreDir(), "contacts.db")
}
