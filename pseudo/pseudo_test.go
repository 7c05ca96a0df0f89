package pseudo

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/npillmayer/domclone/clone"
	"github.com/npillmayer/domclone/dom/style"
	"github.com/npillmayer/domclone/dom/vtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decls(t *testing.T, css string) *style.Declarations {
	d, err := style.ParseDeclarations(css)
	require.NoError(t, err)
	return d
}

func TestBeforeAndAfter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domclone.clone")
	defer teardown()
	//
	n := vtree.NewElement("q", vtree.Attr("class", "quote")).AppendChild(vtree.NewText("cite"))
	n.SetPseudoStyle("before", decls(t, `content: "Q"; color: gray !important`))
	n.SetPseudoStyle("::after", decls(t, "content: none"))
	ids := 0
	p := New(WithIDs(func() string { ids++; return "p" + string(rune('0'+ids)) }))
	//
	cl, err := clone.Snapshot(context.Background(), n, vtree.NewWindow(600), clone.WithPseudoCloner(p))
	require.NoError(t, err)
	class, _ := cl.Attr("class")
	assert.Equal(t, "quote p1", class)
	children := cl.ChildNodes()
	require.Len(t, children, 2)
	assert.Equal(t, "style", children[1].Tag())
	assert.Equal(t, `.p1:before{content: "Q"; color: gray !important;}`, children[1].TextContent())
	var buf bytes.Buffer
	require.NoError(t, clone.Render(&buf, cl))
	assert.True(t, strings.HasSuffix(buf.String(), `<style>.p1:before{content: "Q"; color: gray !important;}</style></q>`),
		buf.String())
}

func TestSerializedPseudoStyle(t *testing.T) {
	st := decls(t, `content: "x"; color: red`)
	rule := StyleRule("c", "after", st)
	assert.Equal(t, `.c:after{content: "x"; color: red; content: 'x';}`, rule)
	rule = StyleRule("c", "after", style.Opaque(st))
	assert.Equal(t, `.c:after{content: "x"; color: red;}`, rule)
}

func TestDefaultClassNames(t *testing.T) {
	n := vtree.NewElement("span")
	n.SetPseudoStyle("after", decls(t, "content: '*'"))
	cl, err := clone.Snapshot(context.Background(), n, vtree.NewWindow(600), clone.WithPseudoCloner(New()))
	require.NoError(t, err)
	class, ok := cl.Attr("class")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(class, "domclone-"), class)
	assert.Len(t, class, len("domclone-")+36)
}

func TestNoPseudoContent(t *testing.T) {
	n := vtree.NewElement("span")
	n.SetPseudoStyle("before", decls(t, "color: red"))
	cl, err := clone.Snapshot(context.Background(), n, vtree.NewWindow(600), clone.WithPseudoCloner(New()))
	require.NoError(t, err)
	_, ok := cl.Attr("class")
	assert.False(t, ok)
	assert.Empty(t, cl.ChildNodes())
}

func TestVoidElementsGetNoStyleChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domclone.clone")
	defer teardown()
	//
	hr := vtree.NewElement("hr")
	hr.SetPseudoStyle("before", decls(t, "content: 'x'"))
	root := vtree.NewElement("div").AppendChild(hr)
	cl, err := clone.Snapshot(context.Background(), root, vtree.NewWindow(600), clone.WithPseudoCloner(New()))
	require.NoError(t, err)
	clonedHR := cl.ChildNodes()[0]
	assert.Empty(t, clonedHR.ChildNodes())
	_, ok := clonedHR.Attr("class")
	assert.False(t, ok)
	var buf bytes.Buffer
	require.NoError(t, clone.Render(&buf, cl))
	assert.Equal(t, "<div><hr/></div>", buf.String())
}

func TestContentCannotCloseStyleElement(t *testing.T) {
	n := vtree.NewElement("span")
	n.SetPseudoStyle("after", decls(t, `content: "</style><b>x"`))
	p := New(WithIDs(func() string { return "c" }))
	cl, err := clone.Snapshot(context.Background(), n, vtree.NewWindow(600), clone.WithPseudoCloner(p))
	require.NoError(t, err)
	rule := cl.ChildNodes()[0].TextContent()
	assert.NotContains(t, rule, "<")
	assert.Contains(t, rule, `\3C /style>`)
	var buf bytes.Buffer
	require.NoError(t, clone.Render(&buf, cl))
	assert.Equal(t, 1, strings.Count(buf.String(), "</style>"), buf.String())
	assert.NotContains(t, buf.String(), "<b>")
}
