// Package goquery extracts catalog entities from HTML documents using
// goquery with precompiled cascadia selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/catalog"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Query is a compiled CSS selector.
//
// goquery silently matches nothing for an invalid selector string, so
// queries are compiled up front with MustCompile and a bad expression
// panics at package initialization instead.
type Query struct {
	expr string
	sel  cascadia.Selector
}

// MustCompile compiles a CSS selector expression. It panics if expr is invalid.
func MustCompile(expr string) Query {
	return Query{expr: expr, sel: cascadia.MustCompile(expr)}
}

// String returns the selector expression.
func (q Query) String() string {
	return q.expr
}

// SelectSingle returns the first descendant of s matching q.
// Returns ENOTFOUND naming the selector if nothing matches.
func SelectSingle(s *goquery.Selection, q Query) (*goquery.Selection, error) {
	match := s.FindMatcher(goquery.SingleMatcher(q.sel))
	if match.Length() == 0 {
		return nil, catalog.Errorf(catalog.ENOTFOUND, "required fragment missing: %s", q.expr)
	}
	return match, nil
}

// SelectOptional returns the first descendant of s matching q.
// The bool result is false if nothing matches.
func SelectOptional(s *goquery.Selection, q Query) (*goquery.Selection, bool) {
	match := s.FindMatcher(goquery.SingleMatcher(q.sel))
	if match.Length() == 0 {
		return nil, false
	}
	return match, true
}

// SelectMany returns every descendant of s matching q, in document order.
func SelectMany(s *goquery.Selection, q Query) []*goquery.Selection {
	match := s.FindMatcher(q.sel)
	all := make([]*goquery.Selection, 0, match.Length())
	match.Each(func(_ int, sel *goquery.Selection) {
		all = append(all, sel)
	})
	return all
}

// SelectAttr returns attribute name of the first descendant of s matching q.
// Returns ENOTFOUND if the element or a non-empty attribute is missing.
func SelectAttr(s *goquery.Selection, q Query, name string) (string, error) {
	sel, err := SelectSingle(s, q)
	if err != nil {
		return "", err
	}
	val, ok := sel.Attr(name)
	if val = strings.TrimSpace(val); !ok || val == "" {
		return "", catalog.Errorf(catalog.ENOTFOUND, "required attribute missing: %s[%s]", q.expr, name)
	}
	return val, nil
}

// SelectText returns the trimmed text of the first descendant of s matching q.
func SelectText(s *goquery.Selection, q Query) (string, error) {
	sel, err := SelectSingle(s, q)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(sel.Text()), nil
}

// parseFragment parses text as an HTML fragment in a <body> context.
func parseFragment(text string) (*goquery.Document, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(text), body)
	if err != nil {
		return nil, catalog.Errorf(catalog.EINVALID, "failed to parse HTML: %v", err)
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// collapseSpace joins the whitespace-separated fields of s with single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
