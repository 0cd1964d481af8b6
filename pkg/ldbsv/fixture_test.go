package ldbsv

// Hand built in-memory nodes so the parser can be tested without any XML
// engine.

type fakeNode struct {
	tag      string
	text     string
	children []*fakeNode
}

func el(tag string, children ...*fakeNode) *fakeNode {
	return &fakeNode{tag: tag, children: children}
}

func txt(tag string, text string) *fakeNode {
	return &fakeNode{tag: tag, text: text}
}

func (n *fakeNode) Child(name string) Node {
	for _, child := range n.children {
		if child.tag == name {
			return child
		}
	}

	return nil
}

func (n *fakeNode) Children() []Node {
	children := make([]Node, 0, len(n.children))
	for _, child := range n.children {
		children = append(children, child)
	}

	return children
}

func (n *fakeNode) TagName() string {
	return n.tag
}

func (n *fakeNode) Text() string {
	return n.text
}

// serviceResult builds a minimal valid GetServiceDetailsResult with the
// given extra children appended after the mandatory scalars.
func serviceResult(extra ...*fakeNode) *fakeNode {
	children := []*fakeNode{
		txt("serviceType", "train"),
		txt("generatedAt", "2024-05-11T10:30:00+01:00"),
		txt("rid", "202405117126716"),
		txt("uid", "P71267"),
		txt("trainid", "1A23"),
		txt("sdd", "2024-05-11"),
		txt("category", "XX"),
		txt("operator", "London North Eastern Railway"),
		txt("operatorCode", "LN"),
	}

	children = append(children, extra...)

	return &fakeNode{tag: "GetServiceDetailsResult", children: children}
}

func callingPoint(name string, crs string, extra ...*fakeNode) *fakeNode {
	children := []*fakeNode{
		txt("locationName", name),
		txt("crs", crs),
	}

	children = append(children, extra...)

	return &fakeNode{tag: "location", children: children}
}
