package clone

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML converts a cloned tree into an x/net/html tree. The style object of
// an element is serialized into its style attribute.
func (n *Node) HTML() *html.Node {
	h := &html.Node{
		Type: n.nodeType,
		Data: n.data,
	}
	if n.nodeType == html.ElementNode {
		h.Data = n.tag
		h.DataAtom = atom.Lookup([]byte(n.tag))
		h.Attr = n.Attributes()
		if text := n.style.CSSText(); text != "" {
			h.Attr = append(h.Attr, html.Attribute{Key: "style", Val: text})
		}
	}
	for _, ch := range n.ChildNodes() {
		h.AppendChild(ch.HTML())
	}
	return h
}

// Render writes the HTML serialization of a cloned tree to w.
func Render(w io.Writer, n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	return html.Render(w, n.HTML())
}
