package kin

// Anchor tags the visual socket a display edge connects to. Anchors are
// opaque to the engine; the renderer maps them to screen positions.
type Anchor string

const (
	AnchorTop    Anchor = "top"
	AnchorBottom Anchor = "bottom"
	AnchorLeft   Anchor = "left"
	AnchorRight  Anchor = "right"
)

// anchorTable maps each kind to its (source, target) anchor pair.
// Parent/child edges are vertical: the child-side node connects from its
// top anchor to the parent-side node's bottom anchor. Spouse and sibling
// edges are horizontal with their own pair.
//
// This table is the ONLY place rendering orientation is defined. Keeping
// it beside the kind inversion table means rendering can never disagree
// with validation about what "parent" means.
var anchorTable = map[Kind][2]Anchor{
	KindParent:  {AnchorTop, AnchorBottom},
	KindChild:   {AnchorTop, AnchorBottom},
	KindSpouse:  {AnchorRight, AnchorLeft},
	KindSibling: {AnchorRight, AnchorLeft},
}

// AnchorsFor returns the (source, target) anchors for a kind.
func AnchorsFor(k Kind) (source, target Anchor) {
	pair := anchorTable[k]
	return pair[0], pair[1]
}

// DisplayEdge is one undirected renderable edge per unordered person
// pair. Derived, never persisted.
//
// Orientation is canonical: for vertical edges SourceID is always the
// child-side person and TargetID the parent-side person, regardless of
// which endpoint the edge was discovered from, and Kind is recorded as
// KindParent ("target is the parent of source"). Symmetric edges orient
// lexicographically by pair key and keep their own kind.
type DisplayEdge struct {
	ID           string `json:"id"`
	SourceID     string `json:"source_id"`
	TargetID     string `json:"target_id"`
	Kind         Kind   `json:"kind"`
	SourceAnchor Anchor `json:"source_anchor"`
	TargetAnchor Anchor `json:"target_anchor"`
}

// NewDisplayEdge builds the canonical display edge for a perspective
// entry as seen from personID. The ID is deterministic from the
// unordered pair, so both endpoints derive the identical edge.
func NewDisplayEdge(personID string, entry PerspectiveEntry) DisplayEdge {
	var source, target string
	kind := entry.Kind

	switch entry.Kind {
	case KindParent:
		// Related person is the viewer's parent: viewer is the child side.
		source, target = personID, entry.RelatedPersonID
	case KindChild:
		// Related person is the viewer's child: related is the child side.
		source, target = entry.RelatedPersonID, personID
		kind = KindParent
	default:
		source, target = OrderPair(personID, entry.RelatedPersonID)
	}

	srcAnchor, dstAnchor := AnchorsFor(kind)
	return DisplayEdge{
		ID:           DisplayEdgeID(personID, entry.RelatedPersonID),
		SourceID:     source,
		TargetID:     target,
		Kind:         kind,
		SourceAnchor: srcAnchor,
		TargetAnchor: dstAnchor,
	}
}
