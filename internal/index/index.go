// Package index provides the two id lookup strategies used over a transaction
// collection: a linear scan and a hash index built from it.
package index

import "momoapi/internal/models"

// Index maps transaction ids to records. It is derived from a collection and
// never authoritative.
type Index map[string]models.Transaction

// Build creates an index in one O(n) pass. Records without an id are skipped.
// With duplicate ids the first occurrence wins, matching LinearSearch.
func Build(records []models.Transaction) Index {
	idx := make(Index, len(records))
	for _, t := range records {
		if t.ID == "" {
			continue
		}
		if _, exists := idx[t.ID]; exists {
			continue
		}
		idx[t.ID] = t
	}
	return idx
}

// Lookup returns the record with the given id in O(1) average time.
func Lookup(idx Index, id string) (models.Transaction, bool) {
	t, ok := idx[id]
	return t, ok
}

// LinearSearch returns the first record with the given id in O(n) time.
func LinearSearch(records []models.Transaction, id string) (models.Transaction, bool) {
	if id == "" {
		return models.Transaction{}, false
	}
	for _, t := range records {
		if t.ID == id {
			return t, true
		}
	}
	return models.Transaction{}, false
}
