package source

// RawAddressBook is the on-disk address book document.
type RawAddressBook struct {
	Persons []RawPerson `json:"persons"`
}

// RawPerson is one serialized contact.
type RawPerson struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone,omitempty"`
	Email   string   `json:"email,omitempty"`
	Address string   `json:"address,omitempty"`
	Status  string   `json:"status"`
	Price   string   `json:"price,omitempty"`
	Tagged  []string `json:"tagged,omitempty"`
}
