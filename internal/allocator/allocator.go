// Package allocator hands out transaction ids and reference codes.
package allocator

import (
	"strconv"

	"momoapi/internal/models"
)

// Allocator produces strictly increasing numeric string ids. Its counter is
// always derived from a collection of existing transactions, never from
// state of its own.
type Allocator struct {
	next uint64
}

// New seeds an allocator from the existing collection: 1 when empty,
// max(id)+1 when every id is numeric, and max(count, max numeric id)+1
// otherwise. Ids are parsed as int64, so the counter always has room above
// the largest stored id.
func New(existing []models.Transaction) *Allocator {
	if len(existing) == 0 {
		return &Allocator{next: 1}
	}

	var maxID uint64
	allNumeric := true
	for _, t := range existing {
		n, err := strconv.ParseInt(t.ID, 10, 64)
		if err != nil {
			allNumeric = false
			continue
		}
		if n > 0 && uint64(n) > maxID {
			maxID = uint64(n)
		}
	}

	count := uint64(len(existing))
	if !allNumeric && count > maxID {
		return &Allocator{next: count + 1}
	}
	return &Allocator{next: maxID + 1}
}

// Next consumes and returns the next id with its default reference.
func (a *Allocator) Next() (id string, reference string) {
	n := a.next
	a.next++
	return strconv.FormatUint(n, 10), models.Reference(n)
}

// Peek returns the id Next would hand out without consuming it.
func (a *Allocator) Peek() string {
	return strconv.FormatUint(a.next, 10)
}
