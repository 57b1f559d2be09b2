package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Address is the structured form of a listing location.
type Address struct {
	Address   string   `json:"address,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	ZipCode   string   `json:"zipCode,omitempty"`
	Country   string   `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Location is either a free-form label or a structured Address. Older
// listings carry a plain string; listings created through the owner form
// carry an object.
type Location struct {
	Label   string
	Address *Address
}

// PlainLocation returns a label-only location.
func PlainLocation(label string) Location { return Location{Label: label} }

// StructuredLocation returns an address-backed location.
func StructuredLocation(a Address) Location { return Location{Address: &a} }

// IsStructured reports whether the location carries an Address.
func (l Location) IsStructured() bool { return l.Address != nil }

// City returns the address city, or the label for plain locations.
func (l Location) City() string {
	if l.Address != nil {
		return l.Address.City
	}
	return l.Label
}

// String renders a single human-readable line.
func (l Location) String() string {
	if l.Address == nil {
		return l.Label
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{l.Address.Address, l.Address.City, l.Address.State, l.Address.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func (l Location) MarshalJSON() ([]byte, error) {
	if l.Address != nil {
		return json.Marshal(l.Address)
	}
	return json.Marshal(l.Label)
}

func (l *Location) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = Location{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Location{Label: s}
		return nil
	}
	var a Address
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*l = Location{Address: &a}
	return nil
}
