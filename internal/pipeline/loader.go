package pipeline

import (
	"fmt"

	"github.com/theirongolddev/guestlist/internal/model"
	"github.com/theirongolddev/guestlist/internal/source"
)

// LoadResult holds the contacts produced by the loading pipeline.
type LoadResult struct {
	Contacts    []model.Contact
	ParseErrors int
	FromStore   bool
}

// Load parses the address book at path directly.
func Load(path string) (*LoadResult, error) {
	pr := source.ParseFile(path)
	if pr.Err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, pr.Err)
	}
	return &LoadResult{
		Contacts:    pr.Contacts,
		ParseErrors: pr.ParseErrors,
	}, nil
}
