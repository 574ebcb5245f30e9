package models

import "strings"

// ShippingInfo is the delivery form collected during checkout. All fields
// except Landmark are required.
type ShippingInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Landmark string `json:"landmark,omitempty"`
}

// MissingFields returns the names of required fields that are empty after
// trimming whitespace, in a stable order.
func (s ShippingInfo) MissingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"fullName", s.FullName},
		{"phone", s.Phone},
		{"email", s.Email},
		{"address", s.Address},
		{"city", s.City},
		{"state", s.State},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
