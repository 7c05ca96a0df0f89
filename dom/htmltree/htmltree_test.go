package htmltree

import (
	"strings"
	"testing"

	"github.com/npillmayer/domclone/dom"
	"github.com/npillmayer/domclone/dom/style"
	"github.com/npillmayer/domclone/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/domclone/dom/vtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var page = `<!DOCTYPE html>
<html><head><style>
 .box { overflow-y: auto; height: 200px; font-size: 1.5em }
 #main p { color: green }
 p { color: red; margin-top: 2px !important }
 .note::before { content: "!"; color: blue }
 span.inherit { color: inherit; font-weight: initial }
</style></head>
<body style="min-height: 768px"><div id="main" class="box"><p style="margin-top: 5px; color: navy">Hello <b>World</b></p><span class="note">n</span></div><x-card><template shadowrootmode="open"><style>h2 { color: purple }</style><h2>T</h2><slot name="title"></slot><slot></slot></template><span slot="title">Title</span>text<p>Body</p></x-card><textarea>typed</textarea><b><span class="inherit">x</span></b></body></html>
`

func find(root *vtree.Node, pred func(*vtree.Node) bool) *vtree.Node {
	var found *vtree.Node
	root.Walk(func(n *vtree.Node) bool {
		if found == nil && pred(n) {
			found = n
		}
		return found == nil
	})
	return found
}

func byTag(root *vtree.Node, tag string) *vtree.Node {
	return find(root, func(n *vtree.Node) bool { return n.NodeName() == tag })
}

func build(t *testing.T, opts ...Option) (*vtree.Node, *vtree.Window) {
	root, w, err := Parse(strings.NewReader(page), opts...)
	require.NoError(t, err)
	return root, w
}

func TestComputedStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domclone.html")
	defer teardown()
	//
	root, w := build(t)
	assert.Equal(t, "html", root.NodeName())
	assert.Equal(t, float64(DefaultViewportHeight), w.InnerHeight())
	//
	body := byTag(root, "body")
	assert.Equal(t, style.Property("768px"), body.Style().PropertyValue("min-height"))
	assert.Equal(t, style.Property("block"), body.Style().PropertyValue("display"))
	assert.Equal(t, style.Property("8px"), body.Style().PropertyValue("margin-top"))
	assert.Equal(t, style.Property("none"), byTag(root, "head").Style().PropertyValue("display"))
	//
	div := byTag(root, "div")
	assert.Equal(t, style.Property("auto"), div.Style().PropertyValue("overflow-y"))
	assert.Equal(t, style.Property("24px"), div.Style().PropertyValue("font-size"))
	//
	p := byTag(div, "p")
	assert.Equal(t, style.Property("navy"), p.Style().PropertyValue("color"), "inline beats author rules")
	assert.Equal(t, style.Property("2px"), p.Style().PropertyValue("margin-top"), "important beats inline")
	assert.Equal(t, style.Property("24px"), p.Style().PropertyValue("font-size"), "inherited")
	assert.Equal(t, style.Property("static"), p.Style().PropertyValue("position"))
	//
	b := byTag(p, "b")
	assert.Equal(t, style.Property("700"), b.Style().PropertyValue("font-weight"))
	assert.Equal(t, style.Property("navy"), b.Style().PropertyValue("color"))
	//
	inh := find(root, func(n *vtree.Node) bool {
		c, _ := dom.Attr(n, "class")
		return c == "inherit"
	})
	require.NotNil(t, inh)
	assert.Equal(t, style.Property("rgb(0, 0, 0)"), inh.Style().PropertyValue("color"))
	assert.Equal(t, style.Property("400"), inh.Style().PropertyValue("font-weight"))
}

func TestPseudoElementStyles(t *testing.T) {
	root, w := build(t)
	note := find(root, func(n *vtree.Node) bool {
		c, _ := dom.Attr(n, "class")
		return c == "note"
	})
	require.NotNil(t, note)
	before := w.PseudoStyle(note, "before")
	require.NotNil(t, before)
	assert.Equal(t, style.Property(`"!"`), before.PropertyValue("content"))
	assert.Equal(t, style.Property("blue"), before.PropertyValue("color"))
	assert.Nil(t, w.PseudoStyle(note, "after"))
}

func TestDeclarativeShadowRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domclone.html")
	defer teardown()
	//
	root, _ := build(t)
	host := byTag(root, "x-card")
	require.NotNil(t, host)
	shadow, ok := host.ShadowRoot()
	require.True(t, ok)
	require.Len(t, shadow, 4)
	assert.Equal(t, "style", shadow[0].NodeName())
	h2 := shadow[1].(*vtree.Node)
	assert.Equal(t, style.Property("purple"), h2.Style().PropertyValue("color"))
	//
	light := host.ChildNodes()
	require.Len(t, light, 3, "template is not a light child")
	lp := light[2].(*vtree.Node)
	assert.Equal(t, style.Property("red"), lp.Style().PropertyValue("color"))
	//
	named := shadow[2].AssignedNodes()
	require.Len(t, named, 1)
	assert.Equal(t, "span", named[0].NodeName())
	unnamed := shadow[3].AssignedNodes()
	require.Len(t, unnamed, 2)
	assert.Equal(t, "text", unnamed[0].NodeValue())
	assert.Equal(t, "p", unnamed[1].NodeName())
}

func TestFormControlsAndHTMLNodes(t *testing.T) {
	root, _ := build(t)
	ta := byTag(root, "textarea")
	assert.Equal(t, "typed", ta.Value())
	require.NotNil(t, ta.HTMLNode())
	assert.Equal(t, "textarea", ta.HTMLNode().Data)
}

func TestOptions(t *testing.T) {
	extra := douceuradapter.MustParse("#main { position: fixed }")
	root, w := build(t, WithViewport(600), WithScrollY(40), WithSerializedStyles(), WithStyleSheets(extra))
	assert.Equal(t, 600.0, w.InnerHeight())
	assert.Equal(t, 40.0, w.ScrollY())
	div := byTag(root, "div")
	assert.Equal(t, style.Property("fixed"), div.Style().PropertyValue("position"))
	assert.NotEmpty(t, w.ComputedStyle(div).CSSText())
}

func TestBuildSubtree(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	var div *html.Node
	var walk func(*html.Node)
	walk = func(h *html.Node) {
		if h.Type == html.ElementNode && h.Data == "div" {
			div = h
		}
		for ch := h.FirstChild; ch != nil && div == nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(doc)
	require.NotNil(t, div)
	root, _, err := Build(div)
	require.NoError(t, err)
	assert.Equal(t, "div", root.NodeName())
	assert.Equal(t, style.Property("24px"), root.Style().PropertyValue("font-size"))
	assert.Nil(t, root.ParentNode())
	//
	_, _, err = Build(nil)
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestSelectorHelpers(t *testing.T) {
	assert.Equal(t, []string{"a", "b[x='1,2']", ":is(c, d)"}, splitSelectors("a, b[x='1,2'] ,:is(c, d)"))
	sel, pseudo := pseudoElement(".x::after")
	assert.Equal(t, ".x", sel)
	assert.Equal(t, "after", pseudo)
	sel, pseudo = pseudoElement(":before")
	assert.Equal(t, "*", sel)
	assert.Equal(t, "before", pseudo)
	assert.Equal(t, style.Property("32px"), fontSize("2em", 16))
	assert.Equal(t, style.Property("8px"), fontSize("50%", 16))
	assert.Equal(t, style.Property("24px"), fontSize("1.5rem", 10))
	assert.Equal(t, style.Property("small"), fontSize("small", 16))
}
