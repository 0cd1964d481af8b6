package ldbsv

// Node is the capability this package needs from an XML engine: direct
// child lookup by tag, ordered child iteration, the node's own tag and its
// direct text content. Implementations must be read-only; the builder never
// depends on a concrete parser type.
type Node interface {
	// Child returns the first direct child with the given tag, or nil if
	// there is none.
	Child(name string) Node

	// Children returns the direct element children in document order.
	Children() []Node

	TagName() string

	// Text returns the node's own text content, empty if it has none.
	Text() string
}

// findDescendant walks the tree below root in document order and returns
// the first element with the given tag, or nil.
func findDescendant(root Node, name string) Node {
	for _, child := range root.Children() {
		if child.TagName() == name {
			return child
		}

		if found := findDescendant(child, name); found != nil {
			return found
		}
	}

	return nil
}
