// Package etree implements the schedule feed extractor using the
// beevik/etree XML library.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/catalog"
)

// Query is a compiled path expression that remembers its source text for
// error messages.
type Query struct {
	expr string
	path etree.Path
}

// MustCompile compiles a path expression and panics if it is invalid.
// Queries are package-level configuration, so a bad one is a programming
// error.
func MustCompile(expr string) Query {
	return Query{expr: expr, path: etree.MustCompilePath(expr)}
}

// String returns the source expression.
func (q Query) String() string { return q.expr }

// SelectOptional returns the first element matching q, or false.
func SelectOptional(e *etree.Element, q Query) (*etree.Element, bool) {
	found := e.FindElementPath(q.path)
	return found, found != nil
}

// SelectMany returns every element matching q in document order. The result
// is never nil.
func SelectMany(e *etree.Element, q Query) []*etree.Element {
	found := e.FindElementsPath(q.path)
	if found == nil {
		return []*etree.Element{}
	}
	return found
}

// SelectValue returns the trimmed value of an attribute on e, falling back
// to the text of the first child element with the same name. Empty values
// are absent.
func SelectValue(e *etree.Element, name string) *string {
	value := e.SelectAttrValue(name, "")
	if value == "" {
		if child := e.SelectElement(name); child != nil {
			value = child.Text()
		}
	}
	if value = strings.TrimSpace(value); value == "" {
		return nil
	}
	return &value
}

// parseDocument parses an XML document. Input without a root element is
// invalid.
func parseDocument(text string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, catalog.Errorf(catalog.EINVALID, "malformed XML: %v", err)
	}
	if doc.Root() == nil {
		return nil, catalog.Errorf(catalog.EINVALID, "XML document has no root element")
	}
	return doc, nil
}
