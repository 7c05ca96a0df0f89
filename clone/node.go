package clone

import (
	"fmt"
	"strings"

	"github.com/npillmayer/domclone/dom/style"
	"github.com/npillmayer/domclone/tree"
	"golang.org/x/net/html"
)

// Node is a cloned node: a detached replica of a visual node. It mirrors the
// shallow identity of the original (type, tag, attributes, character data)
// and owns an independently mutable style object and list of children.
//
// A Node has no reference to the visual node it was cloned from.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	nodeType         html.NodeType
	tag              string
	data             string
	attrs            []html.Attribute
	style            *style.Declarations // nil for non-elements
	replaced         bool                // element replaces a media node
}

func newNode(t html.NodeType, tag, data string) *Node {
	n := &Node{nodeType: t, tag: tag, data: data}
	n.Payload = n // Payload will always reference the node itself
	if t == html.ElementNode {
		n.style = style.NewDeclarations()
	}
	return n
}

// NewElement creates a detached element node.
func NewElement(tag string) *Node {
	return newNode(html.ElementNode, strings.ToLower(tag), "")
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return newNode(html.TextNode, "#text", text)
}

// NodeOf gets the cloned node from a generic tree node.
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
		return "<" + n.tag + ">"
	}
	return n.tag
}

// NodeType returns the type of the node.
func (n *Node) NodeType() html.NodeType {
	return n.nodeType
}

// Tag returns the lower-case tag name of an element, or a node name
// like "#text" for other nodes.
func (n *Node) Tag() string {
	return n.tag
}

// Data returns the character data of text and comment nodes.
func (n *Node) Data() string {
	return n.data
}

// IsElement is a predicate for element nodes.
func (n *Node) IsElement() bool {
	return n.nodeType == html.ElementNode
}

// Replaced is true for image elements which replace a canvas or a video
// of the original tree.
func (n *Node) Replaced() bool {
	return n.replaced
}

// Style returns the style object of an element, or nil for other nodes.
func (n *Node) Style() *style.Declarations {
	return n.style
}

// Attributes returns a copy of the attributes of a node.
func (n *Node) Attributes() []html.Attribute {
	attrs := make([]html.Attribute, len(n.attrs))
	copy(attrs, n.attrs)
	return attrs
}

// Attr returns the value of an attribute, if present.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets an attribute, replacing an existing one with the same key.
func (n *Node) SetAttribute(key, val string) {
	for i, a := range n.attrs {
		if a.Namespace == "" && a.Key == key {
			n.attrs[i].Val = val
			return
		}
	}
	n.attrs = append(n.attrs, html.Attribute{Key: key, Val: val})
}

// RemoveAttribute removes an attribute, if present.
func (n *Node) RemoveAttribute(key string) {
	for i, a := range n.attrs {
		if a.Namespace == "" && a.Key == key {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// AddClass adds a class name to the class attribute of an element.
func (n *Node) AddClass(class string) {
	classes, _ := n.Attr("class")
	classes = strings.TrimSpace(classes + " " + class)
	n.SetAttribute("class", classes)
}

// AppendChild appends a child node and returns n.
func (n *Node) AppendChild(ch *Node) *Node {
	if ch != nil {
		n.AddChild(&ch.Node)
	}
	return n
}

// ChildNodes returns the children of a node.
func (n *Node) ChildNodes() []*Node {
	children := n.Children()
	r := make([]*Node, len(children))
	for i, ch := range children {
		r[i] = NodeOf(ch)
	}
	return r
}

// SetTextContent replaces all children of a node by a single text node.
func (n *Node) SetTextContent(text string) {
	n.RemoveChildren()
	if text != "" {
		n.AppendChild(NewText(text))
	}
}

// TextContent returns the concatenated text of all descendant text nodes.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Node.Walk(func(d *tree.Node[*Node]) bool {
		if d.Payload.nodeType == html.TextNode {
			b.WriteString(d.Payload.data)
		}
		return true
	})
	return b.String()
}
