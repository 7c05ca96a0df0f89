package vtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/domclone/dom"
	"github.com/npillmayer/domclone/dom/style"
	"github.com/npillmayer/domclone/tree"
	"golang.org/x/net/html"
)

// Node is a visual node, the building block of an in-memory visual tree.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	nodeType         html.NodeType
	name             string
	data             string
	attrs            []html.Attribute
	computed         *style.Declarations
	pseudo           map[string]*style.Declarations
	scrollTop        float64
	scrollLeft       float64
	shadow           *Node   // shadow root, if attached
	host             *Node   // host element, if this is a shadow root
	assigned         []*Node // nodes projected into a slot
	value            *string // current value of form controls
	canvas           canvasContent
	htmlNode         *html.Node
}

const shadowRootName = "#shadow-root"

func newNode(t html.NodeType, name, data string) *Node {
	n := &Node{nodeType: t, name: name, data: data}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// NewElement creates a new element node for a tag.
func NewElement(tag string, attrs ...html.Attribute) *Node {
	n := newNode(html.ElementNode, strings.ToLower(tag), "")
	n.attrs = append(n.attrs, attrs...)
	return n
}

// NewText creates a new text node.
func NewText(text string) *Node {
	return newNode(html.TextNode, "#text", text)
}

// NewComment creates a new comment node.
func NewComment(text string) *Node {
	return newNode(html.CommentNode, "#comment", text)
}

// Attr is a shortcut to create an HTML attribute.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// NodeOf gets the visual node from a generic tree node.
func NodeOf(n *tree.Node[*Node]) *Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

func (n *Node) String() string {
	switch n.nodeType {
	case html.TextNode:
		return fmt.Sprintf("%q", n.data)
	case html.ElementNode:
		return "<" + n.name + ">"
	}
	return n.name
}

// --- Building ----------------------------------------------------------

// AppendChild appends children to n and returns n.
func (n *Node) AppendChild(children ...*Node) *Node {
	for _, ch := range children {
		if ch != nil {
			n.AddChild(&ch.Node)
		}
	}
	return n
}

// AttachShadow attaches a shadow root to an element and returns it.
// Shadow content is appended to the returned node. If a shadow root
// is already attached, it is returned.
func (n *Node) AttachShadow() *Node {
	if n.shadow == nil {
		n.shadow = newNode(html.DocumentNode, shadowRootName, "")
		n.shadow.host = n
	}
	return n.shadow
}

// Assign sets the nodes projected into a slot element.
func (n *Node) Assign(nodes ...*Node) *Node {
	n.assigned = append(n.assigned[:0:0], nodes...)
	return n
}

// SetAttribute sets an attribute, replacing an existing one with the same key.
func (n *Node) SetAttribute(key, val string) *Node {
	for i, a := range n.attrs {
		if a.Namespace == "" && a.Key == key {
			n.attrs[i].Val = val
			return n
		}
	}
	n.attrs = append(n.attrs, html.Attribute{Key: key, Val: val})
	return n
}

// SetStyle sets the computed style snapshot of an element.
func (n *Node) SetStyle(decls *style.Declarations) *Node {
	n.computed = decls
	return n
}

// SetStyleText sets the computed style snapshot from a declaration list.
func (n *Node) SetStyleText(text string) error {
	decls, err := style.ParseDeclarations(text)
	if err != nil {
		return err
	}
	n.computed = decls
	return nil
}

// Style returns the computed style snapshot of a node. It may be nil.
func (n *Node) Style() *style.Declarations {
	return n.computed
}

// SetPseudoStyle sets the computed style of a pseudo-element, where pseudo
// is "before" or "after".
func (n *Node) SetPseudoStyle(pseudo string, decls *style.Declarations) *Node {
	if n.pseudo == nil {
		n.pseudo = make(map[string]*style.Declarations)
	}
	n.pseudo[strings.TrimLeft(pseudo, ":")] = decls
	return n
}

// PseudoStyle returns the computed style of a pseudo-element or nil.
func (n *Node) PseudoStyle(pseudo string) *style.Declarations {
	return n.pseudo[strings.TrimLeft(pseudo, ":")]
}

// SetScroll sets the scroll offsets of a node.
func (n *Node) SetScroll(top, left float64) *Node {
	n.scrollTop, n.scrollLeft = top, left
	return n
}

// SetValue sets the current value of a form control, overriding the value
// derived from its markup.
func (n *Node) SetValue(v string) *Node {
	n.value = &v
	return n
}

// SetHTMLNode links a visual node to the HTML node it has been created from.
func (n *Node) SetHTMLNode(h *html.Node) *Node {
	n.htmlNode = h
	return n
}

// HTMLNode gets the HTML DOM node corresponding to this visual node, if any.
func (n *Node) HTMLNode() *html.Node {
	return n.htmlNode
}

// Parent returns the parent visual node, skipping shadow roots.
func (n *Node) Parent() *Node {
	p := NodeOf(n.Node.Parent())
	if p != nil && p.host != nil {
		return p.host
	}
	return p
}

// Walk visits n and its descendants in pre-order, including shadow trees.
func (n *Node) Walk(f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}
	if n.shadow != nil {
		n.shadow.Walk(f)
	}
	for _, ch := range n.Node.Children() {
		NodeOf(ch).Walk(f)
	}
}

// --- Interface dom.Node ------------------------------------------------

// NodeType is part of interface dom.Node.
func (n *Node) NodeType() html.NodeType {
	return n.nodeType
}

// NodeName is part of interface dom.Node.
func (n *Node) NodeName() string {
	return n.name
}

// NodeValue is part of interface dom.Node.
func (n *Node) NodeValue() string {
	return n.data
}

// Attributes is part of interface dom.Node.
func (n *Node) Attributes() []html.Attribute {
	attrs := make([]html.Attribute, len(n.attrs))
	copy(attrs, n.attrs)
	return attrs
}

// ParentNode is part of interface dom.Node. Children of a shadow root
// report the shadow host as their parent.
func (n *Node) ParentNode() dom.Node {
	if p := n.Parent(); p != nil {
		return p
	}
	return nil
}

// ChildNodes is part of interface dom.Node.
func (n *Node) ChildNodes() []dom.Node {
	return asDOMNodes(n.Node.Children())
}

// ShadowRoot is part of interface dom.Node.
func (n *Node) ShadowRoot() ([]dom.Node, bool) {
	if n.shadow == nil {
		return nil, false
	}
	return n.shadow.ChildNodes(), true
}

// AssignedNodes is part of interface dom.Node.
func (n *Node) AssignedNodes() []dom.Node {
	r := make([]dom.Node, len(n.assigned))
	for i, a := range n.assigned {
		r[i] = a
	}
	return r
}

// ScrollTop is part of interface dom.Node.
func (n *Node) ScrollTop() float64 {
	return n.scrollTop
}

// ScrollLeft is part of interface dom.Node.
func (n *Node) ScrollLeft() float64 {
	return n.scrollLeft
}

// Value is part of interface dom.FormControl. Without an explicitly set
// value, it is derived from the markup the way a browser initializes
// form controls.
func (n *Node) Value() string {
	if n.value != nil {
		return *n.value
	}
	switch n.name {
	case "input", "option":
		if v, ok := dom.Attr(n, "value"); ok {
			return v
		}
		if n.name == "option" {
			return strings.TrimSpace(n.TextContent())
		}
	case "textarea":
		return n.TextContent()
	case "select":
		var first, selected *Node
		n.Walk(func(d *Node) bool {
			if d.name == "option" {
				if first == nil {
					first = d
				}
				if _, ok := dom.Attr(d, "selected"); ok && selected == nil {
					selected = d
				}
			}
			return true
		})
		if selected == nil {
			selected = first
		}
		if selected != nil {
			return selected.Value()
		}
	}
	return ""
}

// TextContent returns the concatenated text of n and all its descendants.
func (n *Node) TextContent() string {
	var b strings.Builder
	for _, ch := range n.Node.Children() {
		c := NodeOf(ch)
		if c.nodeType == html.TextNode {
			b.WriteString(c.data)
		} else if c.nodeType == html.ElementNode {
			b.WriteString(c.TextContent())
		}
	}
	return b.String()
}

func asDOMNodes(children []*tree.Node[*Node]) []dom.Node {
	if len(children) == 0 {
		return nil
	}
	r := make([]dom.Node, len(children))
	for i, ch := range children {
		r[i] = NodeOf(ch)
	}
	return r
}

var _ dom.Node = &Node{}
var _ dom.FormControl = &Node{}
var _ dom.Canvas = &Node{}
