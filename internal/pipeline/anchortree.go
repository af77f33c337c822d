package pipeline

// Anchor is one navigable heading record: visible title, fragment href, and
// heading depth 1..6. The full ordered list for one document is a value
// object, never mutated after the conversion pass completes.
type Anchor struct {
	Title string
	Href  string
	Level int
}

// AnchorNode is an Anchor with its grouped children.
type AnchorNode struct {
	Anchor
	Children []*AnchorNode
}

// BuildAnchorTree converts the flat, ordered anchor list into a forest.
//
// Single left-to-right reduction: an anchor starts a new top-level node when
// the forest is empty or its level is at or above the first top-level
// node's; otherwise it becomes a child of the most recently added top-level
// node. Grouping is deliberately one level deep — an h3 after an h2 under an
// h1 lands as a flat sibling of the h2, not nested beneath it. The forest is
// rebuilt from scratch on every conversion.
func BuildAnchorTree(anchors []Anchor) []*AnchorNode {
	var forest []*AnchorNode
	for _, a := range anchors {
		if len(forest) == 0 || a.Level <= forest[0].Level {
			forest = append(forest, &AnchorNode{Anchor: a})
			continue
		}
		last := forest[len(forest)-1]
		last.Children = append(last.Children, &AnchorNode{Anchor: a})
	}
	return forest
}
