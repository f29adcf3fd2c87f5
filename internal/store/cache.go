// Package store provides a SQLite-backed copy of the address book.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/guestlist/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store holds imported contacts in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// FileInfo holds the tracked mtime and size of an imported file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
}

// TrackedFile returns the file info recorded at the last import of path.
func (s *Store) TrackedFile(path string) (FileInfo, bool, error) {
	var fi FileInfo
	err := s.db.QueryRow("SELECT mtime_ns, size_bytes FROM file_tracker WHERE file_path = ?", path).
		Scan(&fi.MtimeNs, &fi.SizeBytes)
	if errors.Is(err, sql.ErrNoRows) {
		return FileInfo{}, false, nil
	}
	if err != nil {
		return FileInfo{}, false, err
	}
	return fi, true, nil
}

// ReplaceContacts swaps the stored address book for contacts and records
// path as its source. Input order is kept for both contacts and tags.
func (s *Store) ReplaceContacts(path string, contacts []model.Contact, fi FileInfo) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM contact_tags"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM file_tracker"); err != nil {
		return err
	}

	for i, c := range contacts {
		res, err := tx.Exec(`INSERT INTO contacts
			(position, name, phone, email, address, status, price)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, c.Name, c.Phone, c.Email, c.Address, c.Status, c.Price,
		)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for j, tag := range c.Tags {
			_, err = tx.Exec("INSERT OR IGNORE INTO contact_tags (contact_id, position, tag) VALUES (?, ?, ?)",
				id, j, tag)
			if err != nil {
				return err
			}
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT INTO file_tracker (file_path, mtime_ns, size_bytes, imported_at)
		VALUES (?, ?, ?, ?)`, path, fi.MtimeNs, fi.SizeBytes, now)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// LoadAllContacts reads every stored contact in import order.
func (s *Store) LoadAllContacts() ([]model.Contact, error) {
	rows, err := s.db.Query(`SELECT
		contact_id, name, phone, email, address, status, price
		FROM contacts ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var contacts []model.Contact
	contactIdx := make(map[int64]int)
	for rows.Next() {
		var id int64
		var c model.Contact
		var phone, email, address, price sql.NullString
		if err := rows.Scan(&id, &c.Name, &phone, &email, &address, &c.Status, &price); err != nil {
			return nil, err
		}
		c.Phone = phone.String
		c.Email = email.String
		c.Address = address.String
		c.Price = price.String
		contactIdx[id] = len(contacts)
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Batch-load tags
	tagRows, err := s.db.Query("SELECT contact_id, tag FROM contact_tags ORDER BY contact_id, position")
	if err != nil {
		return nil, err
	}
	defer func() { _ = tagRows.Close() }()

	for tagRows.Next() {
		var id int64
		var tag string
		if err := tagRows.Scan(&id, &tag); err != nil {
			return nil, err
		}
		if idx, ok := contactIdx[id]; ok {
			contacts[idx].Tags = append(contacts[idx].Tags, tag)
		}
	}

	return contacts, tagRows.Err()
}

// ContactCount returns the number of stored contacts.
func (s *Store) ContactCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM contacts").Scan(&count)
	return count, err
}
