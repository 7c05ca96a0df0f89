package dom

import (
	"github.com/npillmayer/domclone/dom/style"
	"golang.org/x/net/html"
)

// Node represents a node of a live visual tree, i.e. a W3C-type Node as
// rendered by some environment. Nodes are read-only for this module.
type Node interface {
	NodeType() html.NodeType                // type of the node (ElementNode, TextNode, etc.)
	NodeName() string                       // lower-case tag name for elements, "#text" for text
	NodeValue() string                      // character data for text and comment nodes
	Attributes() []html.Attribute           // attributes, in document order
	ParentNode() Node                       // layout parent, nil for the root
	ChildNodes() []Node                     // direct children, in document order
	ShadowRoot() (children []Node, ok bool) // children of an attached shadow root, if any
	AssignedNodes() []Node                  // nodes projected into a slot element
	ScrollTop() float64                     // vertical scroll offset in CSS pixels
	ScrollLeft() float64                    // horizontal scroll offset in CSS pixels
}

// Canvas is implemented by nodes which are able to serialize their drawn
// pixel content, like a browser's HTMLCanvasElement.toDataURL().
//
// Serialization of a canvas without drawing area results in the sentinel
// EmptyCanvasDataURL.
type Canvas interface {
	ToDataURL() (string, error)
}

// EmptyCanvasDataURL is the data URL a canvas without pixel content serializes to.
const EmptyCanvasDataURL = "data:,"

// FormControl is implemented by nodes of form elements (input, textarea,
// select) which carry a current, possibly user-entered, value.
type FormControl interface {
	Value() string
}

// Environment is the rendering environment of a visual tree. It is passed
// explicitly to every operation which needs access to global rendering state.
type Environment interface {
	ComputedStyle(n Node) style.ComputedStyle // resolved style of an element, may be nil
	ScrollY() float64                         // vertical scroll offset of the window
	InnerHeight() float64                     // height of the viewport in CSS pixels
}

// PseudoStyler is implemented by environments which are able to report the
// computed style of pseudo-elements. pseudo is either "before" or "after".
type PseudoStyler interface {
	PseudoStyle(n Node, pseudo string) style.ComputedStyle
}

// Attr returns the value of an attribute of n, if present.
func Attr(n Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attributes() {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// IsElement is a predicate for element nodes.
func IsElement(n Node) bool {
	return n != nil && n.NodeType() == html.ElementNode
}

// ParentElement returns the parent of n if it is an element, nil otherwise.
func ParentElement(n Node) Node {
	if n == nil {
		return nil
	}
	p := n.ParentNode()
	if !IsElement(p) {
		return nil
	}
	return p
}
