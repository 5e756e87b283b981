package fingrow

import (
	"crypto/rand"
	"encoding/hex"
	"sort"
	"time"
)

// keyed is implemented by every collection entry: it has an opaque identity
// and a point in time to sort on.
type keyed interface {
	ident() string
	moment() time.Time
}

// newID generates a fresh opaque identifier. Uniqueness is overwhelmingly
// probable, not guaranteed; a collision is an accepted residual risk.
func newID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("cannot read random source: " + err.Error())
	}
	return hex.EncodeToString(b[:])
}

// sortByDateDesc sorts a collection newest first. The sort is stable, entries
// sharing a date keep their relative order.
func sortByDateDesc[T keyed](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].moment().After(items[j].moment())
	})
}

// insert prepends an entry and restores the descending date order.
func insert[T keyed](items []T, it T) []T {
	items = append([]T{it}, items...)
	sortByDateDesc(items)
	return items
}

// replace substitutes the entry whose id matches. An unmatched id leaves the
// collection unchanged. The order is restored after replacement.
func replace[T keyed](items []T, it T) []T {
	for i := range items {
		if items[i].ident() == it.ident() {
			items[i] = it
			sortByDateDesc(items)
			return items
		}
	}
	return items
}

// remove drops the entry whose id matches. An unmatched id leaves the
// collection unchanged.
func remove[T keyed](items []T, id string) []T {
	for i := range items {
		if items[i].ident() == id {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}
