// Package models defines the flat records produced by the Everli client.
package models

// Store is a partner store scoped to a delivery location.
//
// Pointer fields come from optional upstream entries (the first label and the
// first tracking entry of a store) and are nil when the upstream omits them.
type Store struct {
	ID         string  `json:"id"`
	LocationID *string `json:"locationId,omitempty"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Color      *string `json:"color,omitempty"`
	Type       *int    `json:"type,omitempty"`
	Address    *string `json:"address,omitempty"`
	Province   *string `json:"province,omitempty"`
	IsNew      *int    `json:"isNew,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	Country    *string `json:"country,omitempty"`
	Area       *string `json:"area,omitempty"`
}

// Location returns the owning location id or "" when absent.
func (s Store) Location() string {
	return deref(s.LocationID)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
