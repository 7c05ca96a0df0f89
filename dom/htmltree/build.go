package htmltree

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/domclone/dom"
	"github.com/npillmayer/domclone/dom/style"
	"github.com/npillmayer/domclone/dom/style/cssom"
	"github.com/npillmayer/domclone/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/domclone/dom/vtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoDocument is returned if an HTML parse tree has no element to build a
// visual tree from.
var ErrNoDocument = errors.New("htmltree: no document element")

// DefaultViewportHeight is the viewport height of windows created by Build.
const DefaultViewportHeight = 768

// Option is a type to help initializing the build of visual trees.
type Option func(*builder)

// WithStyleSheets adds stylesheets to the ones found in the document. They
// take precedence over embedded <style>s with equal specificity.
func WithStyleSheets(sheets ...cssom.StyleSheet) Option {
	return func(b *builder) {
		b.extra = append(b.extra, sheets...)
	}
}

// WithViewport sets the viewport height of the window.
func WithViewport(height float64) Option {
	return func(b *builder) {
		b.window.ViewportHeight = height
	}
}

// WithScrollY sets the vertical scroll offset of the window.
func WithScrollY(y float64) Option {
	return func(b *builder) {
		b.window.PageYOffset = y
	}
}

// WithSerializedStyles lets the window report computed styles in serialized
// form (see vtree.Window).
func WithSerializedStyles() Option {
	return func(b *builder) {
		b.window.SerializedStyles = true
	}
}

type builder struct {
	extra  []cssom.StyleSheet
	window *vtree.Window
	ua     ruleSet
}

// Parse parses an HTML document and builds a visual tree for it.
func Parse(r io.Reader, opts ...Option) (*vtree.Node, *vtree.Window, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, fmt.Errorf("htmltree: cannot parse HTML: %w", err)
	}
	return Build(doc, opts...)
}

// Build creates a visual tree from an HTML parse tree, with computed styles
// for every element. If doc is a document node, the visual tree starts at the
// document element (<html>). Otherwise doc has to be an element, and styles
// are computed in the context of the document doc belongs to.
//
// Every visual node is linked to the HTML node it has been created from
// (see vtree.Node.HTMLNode).
func Build(doc *html.Node, opts ...Option) (*vtree.Node, *vtree.Window, error) {
	if doc == nil {
		return nil, nil, ErrNoDocument
	}
	b := &builder{
		window: vtree.NewWindow(DefaultViewportHeight),
		ua:     compile([]cssom.StyleSheet{userAgentSheet}),
	}
	for _, option := range opts {
		option(b)
	}
	root := doc
	if doc.Type == html.DocumentNode {
		root = documentElement(doc)
	}
	if root == nil || root.Type != html.ElementNode {
		return nil, nil, ErrNoDocument
	}
	top := root
	for top.Parent != nil {
		top = top.Parent
	}
	var sheets []cssom.StyleSheet
	for _, s := range douceuradapter.ExtractStyleElements(top) {
		sheets = append(sheets, s)
	}
	author := compile(append(sheets, b.extra...))
	tracer().Debugf("htmltree: %d author rules", len(author))
	parentStyle := b.ancestorStyle(root, author)
	return b.build(root, parentStyle, author), b.window, nil
}

func documentElement(doc *html.Node) *html.Node {
	for ch := doc.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			return ch
		}
	}
	return nil
}

// ancestorStyle computes the style of the parent element of h, if any.
func (b *builder) ancestorStyle(h *html.Node, rules ruleSet) *style.Declarations {
	var chain []*html.Node
	for p := h.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			chain = append(chain, p)
		}
	}
	var cs *style.Declarations
	for i := len(chain) - 1; i >= 0; i-- {
		cs = b.styleOf(chain[i], cs, rules)
	}
	return cs
}

func (b *builder) styleOf(h *html.Node, parent *style.Declarations, rules ruleSet) *style.Declarations {
	return computed(displayFor(h), specified(h, b.ua, rules, ""), parent)
}

// pseudoStyleOf computes the style of a pseudo-element. Pseudo-elements
// without a content declaration are not generated and result in nil.
func (b *builder) pseudoStyleOf(h *html.Node, cs *style.Declarations, rules ruleSet, pseudo string) *style.Declarations {
	spec := specified(h, b.ua, rules, pseudo)
	if !spec.Has("content") {
		return nil
	}
	return computed("inline", spec, cs)
}

func (b *builder) build(h *html.Node, parent *style.Declarations, rules ruleSet) *vtree.Node {
	switch h.Type {
	case html.TextNode:
		return vtree.NewText(h.Data).SetHTMLNode(h)
	case html.CommentNode:
		return vtree.NewComment(h.Data).SetHTMLNode(h)
	case html.ElementNode:
	default:
		return nil
	}
	n := vtree.NewElement(h.Data, h.Attr...).SetHTMLNode(h)
	cs := b.styleOf(h, parent, rules)
	n.SetStyle(cs)
	for _, pseudo := range []string{"before", "after"} {
		if ps := b.pseudoStyleOf(h, cs, rules, pseudo); ps != nil {
			n.SetPseudoStyle(pseudo, ps)
		}
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if isShadowTemplate(ch) {
			if _, attached := n.ShadowRoot(); !attached {
				b.attachShadow(n, ch, cs)
				continue
			}
		}
		if c := b.build(ch, cs, rules); c != nil {
			n.AppendChild(c)
		}
	}
	if _, ok := n.ShadowRoot(); ok {
		assignSlots(n)
	}
	return n
}

// isShadowTemplate is a predicate for templates of declarative shadow roots.
func isShadowTemplate(h *html.Node) bool {
	if h.Type != html.ElementNode || h.DataAtom != atom.Template {
		return false
	}
	for _, a := range h.Attr {
		if a.Key == "shadowrootmode" || a.Key == "shadowroot" {
			return true
		}
	}
	return false
}

// attachShadow creates a shadow root for host from a template. Styles of
// the shadow tree are scoped to the stylesheets within the template.
func (b *builder) attachShadow(host *vtree.Node, template *html.Node, hostStyle *style.Declarations) {
	shadow := host.AttachShadow()
	var sheets []cssom.StyleSheet
	for _, s := range douceuradapter.ExtractTemplateStyles(template) {
		sheets = append(sheets, s)
	}
	rules := compile(sheets)
	for ch := template.FirstChild; ch != nil; ch = ch.NextSibling {
		if c := b.build(ch, hostStyle, rules); c != nil {
			shadow.AppendChild(c)
		}
	}
}

// assignSlots projects the children of a shadow host into the slots of its
// shadow tree. Elements are assigned to the first slot whose name equals
// their slot attribute, text and elements without slot attribute to the
// first unnamed slot.
func assignSlots(host *vtree.Node) {
	slots := make(map[string]*vtree.Node)
	var collect func(n *vtree.Node)
	collect = func(n *vtree.Node) {
		if n.NodeName() == "slot" {
			name, _ := dom.Attr(n, "name")
			if _, ok := slots[name]; !ok {
				slots[name] = n
			}
		}
		for _, ch := range n.Children() {
			collect(vtree.NodeOf(ch))
		}
	}
	collect(host.AttachShadow())
	assigned := make(map[*vtree.Node][]*vtree.Node)
	for _, ch := range host.Children() {
		c := vtree.NodeOf(ch)
		name := ""
		switch c.NodeType() {
		case html.ElementNode:
			name, _ = dom.Attr(c, "slot")
		case html.TextNode:
		default:
			continue
		}
		if slot, ok := slots[name]; ok {
			assigned[slot] = append(assigned[slot], c)
		}
	}
	for slot, nodes := range assigned {
		slot.Assign(nodes...)
	}
}
