package kin

import (
	"golang.org/x/text/unicode/norm"
)

// OrderPair returns the two IDs in canonical (lexicographic) order after
// NFC normalization. Person IDs are usually ASCII UUIDs, but records
// imported from external systems may carry composed/decomposed Unicode
// variants of the same identifier; normalizing first keeps the pair key
// stable either way.
func OrderPair(a, b string) (lo, hi string) {
	a = norm.NFC.String(a)
	b = norm.NFC.String(b)
	if b < a {
		return b, a
	}
	return a, b
}

// PairKey computes the order-independent key for an unordered person
// pair. PairKey(a, b) == PairKey(b, a) always holds.
func PairKey(a, b string) string {
	lo, hi := OrderPair(a, b)
	return lo + "--" + hi
}

// DisplayEdgeID derives the deterministic display edge identity for a
// pair. Both endpoints of a relationship derive the same ID.
func DisplayEdgeID(a, b string) string {
	return "pair:" + PairKey(a, b)
}
