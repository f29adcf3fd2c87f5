// Package source reads contacts from address book JSON files.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/guestlist/internal/model"
)

// DefaultPath is where the address book lives relative to the working directory.
var DefaultPath = filepath.Join("data", "addressbook.json")

// ParseResult holds the output of parsing one address book file.
type ParseResult struct {
	Contacts    []model.Contact
	ParseErrors int // persons skipped for missing a name
	Err         error
}

// ParseFile reads an address book and converts each person into a Contact.
// Persons without a name are skipped and counted in ParseErrors. Duplicate
// tags on one person collapse to their first occurrence and blank tags are
// dropped.
func ParseFile(path string) ParseResult {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own flag/config
	if err != nil {
		return ParseResult{Err: err}
	}
	return Parse(data)
}

// Parse converts raw address book JSON into contacts.
func Parse(data []byte) ParseResult {
	var book RawAddressBook
	if err := json.Unmarshal(data, &book); err != nil {
		return ParseResult{Err: fmt.Errorf("decoding address book: %w", err)}
	}

	var result ParseResult
	result.Contacts = make([]model.Contact, 0, len(book.Persons))
	for _, p := range book.Persons {
		if strings.TrimSpace(p.Name) == "" {
			result.ParseErrors++
			continue
		}
		result.Contacts = append(result.Contacts, model.Contact{
			Name:    p.Name,
			Phone:   p.Phone,
			Email:   p.Email,
			Address: p.Address,
			Status:  p.Status,
			Price:   p.Price,
			Tags:    uniqueTags(p.Tagged),
		})
	}
	return result
}

func uniqueTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if strings.TrimSpace(t) == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
