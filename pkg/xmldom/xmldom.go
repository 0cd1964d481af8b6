// Package xmldom adapts a beevik/etree document to the ldbsv.Node
// traversal interface. It is the only package that knows which XML engine
// is in use.
package xmldom

import (
	"errors"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/railquery/railquery/pkg/ldbsv"
)

var errNoRoot = errors.New("document has no root element")

// Parse reads a whole XML document and returns its root as a traversable
// node. Documents that are not well formed XML come back as a
// MalformedDocumentError.
func Parse(data []byte) (ldbsv.Node, error) {
	document := etree.NewDocument()
	document.ReadSettings.CharsetReader = charset.NewReaderLabel

	if err := document.ReadFromBytes(data); err != nil {
		return nil, ldbsv.MalformedDocumentError{Err: err}
	}

	root := document.Root()
	if root == nil {
		return nil, ldbsv.MalformedDocumentError{Err: errNoRoot}
	}

	return Wrap(root), nil
}

// Wrap makes an etree element traversable.
func Wrap(element *etree.Element) ldbsv.Node {
	return node{element: element}
}

type node struct {
	element *etree.Element
}

// Child matches on the local tag name so that SOAP namespace prefixes
// never leak into the domain layer.
func (n node) Child(name string) ldbsv.Node {
	for _, child := range n.element.ChildElements() {
		if child.Tag == name {
			return node{element: child}
		}
	}

	return nil
}

func (n node) Children() []ldbsv.Node {
	elements := n.element.ChildElements()

	children := make([]ldbsv.Node, 0, len(elements))
	for _, element := range elements {
		children = append(children, node{element: element})
	}

	return children
}

func (n node) TagName() string {
	return n.element.Tag
}

func (n node) Text() string {
	return n.element.Text()
}
