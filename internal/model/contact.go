// Package model defines domain types for guestlist contacts and reports.
package model

// Contact is one entry of the address book. Status and Price are kept as
// stored so that classification and price parsing happen at report time.
type Contact struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Status  string
	Price   string
	Tags    []string
}

// HasTag reports whether the contact carries the given tag (exact match).
func (c Contact) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
