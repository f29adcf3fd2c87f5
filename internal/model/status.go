package model

import (
	"errors"
	"fmt"
	"strings"
)

// Status is a contact's response state.
type Status int

const (
	StatusUnknown Status = iota
	StatusConfirmed
	StatusPending
	StatusDeclined
)

// ErrUnknownStatus is returned when a status string matches no known state.
var ErrUnknownStatus = errors.New("unknown status")

func (s Status) String() string {
	switch s {
	case StatusConfirmed:
		return "confirmed"
	case StatusPending:
		return "pending"
	case StatusDeclined:
		return "declined"
	default:
		return "unknown"
	}
}

// ParseStatus normalizes a free-form status string. The full word and its
// first letter are accepted, case-insensitively:
//
//	"Confirmed", "confirmed", "c" -> StatusConfirmed
//	"Pending", "P"                -> StatusPending
//	"declined", "d"               -> StatusDeclined
func ParseStatus(raw string) (Status, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "confirmed", "c":
		return StatusConfirmed, nil
	case "pending", "p":
		return StatusPending, nil
	case "declined", "d":
		return StatusDeclined, nil
	}
	return StatusUnknown, fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}
