package filter

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/domclone/clone"
	"github.com/npillmayer/domclone/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLNoder is implemented by visual nodes which have been created from an
// HTML parse tree.
type HTMLNoder interface {
	HTMLNode() *html.Node
}

// Exclude creates a filter which excludes all elements matching one of the
// selectors, together with their subtrees.
func Exclude(selectors ...string) (clone.Filter, error) {
	sels, err := compile(selectors)
	if err != nil {
		return nil, err
	}
	return func(n dom.Node) bool {
		if !dom.IsElement(n) {
			return true
		}
		if matches(sels, n) {
			tracer().Debugf("filter: excluding %s", n.NodeName())
			return false
		}
		return true
	}, nil
}

// Only creates a filter which keeps elements matching one of the selectors,
// including their subtrees, and the ancestors of matching elements. All
// other nodes are excluded.
func Only(selectors ...string) (clone.Filter, error) {
	sels, err := compile(selectors)
	if err != nil {
		return nil, err
	}
	return func(n dom.Node) bool {
		for a := n; a != nil; a = a.ParentNode() {
			if dom.IsElement(a) && matches(sels, a) {
				return true
			}
		}
		return dom.IsElement(n) && hasMatchingDescendant(sels, n)
	}, nil
}

// All combines filters. The resulting filter includes a node if every one of
// the filters includes it. Nil filters are ignored.
func All(filters ...clone.Filter) clone.Filter {
	return func(n dom.Node) bool {
		for _, f := range filters {
			if f != nil && !f(n) {
				return false
			}
		}
		return true
	}
}

func compile(selectors []string) ([]cascadia.Selector, error) {
	sels := make([]cascadia.Selector, 0, len(selectors))
	for _, s := range selectors {
		sel, err := cascadia.Compile(s)
		if err != nil {
			return nil, fmt.Errorf("filter: invalid selector %q: %w", s, err)
		}
		sels = append(sels, sel)
	}
	return sels, nil
}

func matches(sels []cascadia.Selector, n dom.Node) bool {
	h := htmlNodeFor(n)
	for _, sel := range sels {
		if sel.Match(h) {
			return true
		}
	}
	return false
}

func hasMatchingDescendant(sels []cascadia.Selector, n dom.Node) bool {
	children := n.ChildNodes()
	if shadow, ok := n.ShadowRoot(); ok {
		children = append(shadow, children...)
	}
	for _, ch := range children {
		if !dom.IsElement(ch) {
			continue
		}
		if matches(sels, ch) || hasMatchingDescendant(sels, ch) {
			return true
		}
	}
	return false
}

// htmlNodeFor returns the HTML node of n, or a stand-in with the element
// ancestors of n as parents.
func htmlNodeFor(n dom.Node) *html.Node {
	if hn, ok := n.(HTMLNoder); ok {
		if h := hn.HTMLNode(); h != nil {
			return h
		}
	}
	h := standIn(n)
	child := h
	for p := dom.ParentElement(n); p != nil; p = dom.ParentElement(p) {
		ph := standIn(p)
		ph.AppendChild(child)
		child = ph
	}
	return h
}

func standIn(n dom.Node) *html.Node {
	return &html.Node{
		Type:     n.NodeType(),
		Data:     n.NodeName(),
		DataAtom: atom.Lookup([]byte(n.NodeName())),
		Attr:     n.Attributes(),
	}
}
