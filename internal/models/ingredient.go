// Package models defines the persisted record types for MealTable.
package models

import (
	"strings"
	"time"
)

// Ingredient is a pantry item tracked by the inventory ledger.
// ID is the slugified name and uniquely keys the ledger's mapping.
type Ingredient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	DateAdded time.Time `json:"dateAdded"`
}

// MatchesName reports whether the ingredient matches a free-text query.
// Matching is case-insensitive and bidirectional substring: the ingredient
// name containing the query or the query containing the ingredient name
// both count. This tolerates naming variance between recipe text and
// pantry entries at the cost of false positives for short names
// ("egg" matches "eggplant").
func (i *Ingredient) MatchesName(query string) bool {
	if query == "" {
		return false
	}
	name := strings.ToLower(i.Name)
	q := strings.ToLower(query)
	return strings.Contains(name, q) || strings.Contains(q, name)
}
