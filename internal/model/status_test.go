package model

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
		ok   bool
	}{
		{"Confirmed", StatusConfirmed, true},
		{"confirmed", StatusConfirmed, true},
		{"CONFIRMED", StatusConfirmed, true},
		{"c", StatusConfirmed, true},
		{"C", StatusConfirmed, true},
		{" pending ", StatusPending, true},
		{"p", StatusPending, true},
		{"Declined", StatusDeclined, true},
		{"d", StatusDeclined, true},
		{"maybe", StatusUnknown, false},
		{"conf", StatusUnknown, false},
		{"", StatusUnknown, false},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrUnknownStatus) {
			t.Errorf("ParseStatus(%q) err = %v, want ErrUnknownStatus", tt.in, err)
		}
		if got != StatusUnknown {
			t.Errorf("ParseStatus(%q) = %v, want unknown", tt.in, got)
		}
	}
}

func TestStatusString(t *testing.T) {
	if StatusPending.String() != "pending" || StatusUnknown.String() != "unknown" {
		t.Errorf("unexpected names: %s %s", StatusPending, StatusUnknown)
	}
}
