package kin

import "fmt"

// Kind classifies a family relationship edge.
//
// Kinds are directional labels on a stored edge: KindParent means
// "FromID is the parent of ToID", KindChild means "FromID is the child
// of ToID". The two are the SAME semantic relationship read from either
// end, not two different relationship types. KindSpouse and KindSibling
// read identically from both ends.
type Kind string

const (
	KindParent  Kind = "parent"
	KindChild   Kind = "child"
	KindSpouse  Kind = "spouse"
	KindSibling Kind = "sibling"
)

// ValidKinds defines the closed set of relationship kinds.
var ValidKinds = map[Kind]bool{
	KindParent:  true,
	KindChild:   true,
	KindSpouse:  true,
	KindSibling: true,
}

// inverseTable is the single source of truth for kind inversion.
// Every read-side transformation in the engine goes through this table;
// duplicating it at call sites is exactly the drift this package exists
// to prevent.
var inverseTable = map[Kind]Kind{
	KindParent:  KindChild,
	KindChild:   KindParent,
	KindSpouse:  KindSpouse,
	KindSibling: KindSibling,
}

// IsValid reports whether k is one of the four known kinds.
func (k Kind) IsValid() bool {
	return ValidKinds[k]
}

// Symmetric reports whether k reads the same from both endpoints.
func (k Kind) Symmetric() bool {
	return k == KindSpouse || k == KindSibling
}

// Inverse returns the kind as read from the opposite endpoint of an edge.
// parent <-> child; spouse and sibling are their own inverse.
//
// Panics on unknown kinds - callers must validate with IsValid first.
// Unknown kinds are a data anomaly handled at the normalization boundary,
// not something to silently map.
func (k Kind) Inverse() Kind {
	inv, ok := inverseTable[k]
	if !ok {
		panic(fmt.Sprintf("kin: no inverse for unknown kind %q", k))
	}
	return inv
}

// ParseKind validates a raw string from an external record.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown relationship kind %q", s)
	}
	return k, nil
}
