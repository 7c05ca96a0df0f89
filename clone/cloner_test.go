package clone

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/npillmayer/domclone/dom"
	"github.com/npillmayer/domclone/dom/style"
	"github.com/npillmayer/domclone/dom/vtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tags(n *Node) []string {
	var r []string
	for _, ch := range n.ChildNodes() {
		r = append(r, ch.Tag())
	}
	return r
}

func TestExcludedChildIsSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domclone.clone")
	defer teardown()
	//
	root := vtree.NewElement("div").AppendChild(
		vtree.NewElement("a"),
		vtree.NewElement("b"),
		vtree.NewElement("i"),
	)
	cl, err := Snapshot(context.Background(), root, vtree.NewWindow(600),
		WithFilter(func(n dom.Node) bool { return n.NodeName() != "b" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "i"}, tags(cl))
}

func TestFilterDoesNotVisitExcludedSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domclone.clone")
	defer teardown()
	//
	root := vtree.NewElement("main").AppendChild(
		vtree.NewElement("section").AppendChild(
			vtree.NewElement("p").AppendChild(vtree.NewText("hidden")),
		),
		vtree.NewElement("footer"),
	)
	var visited []string
	spy := func(n dom.Node) bool {
		visited = append(visited, n.NodeName())
		return n.NodeName() != "section" && n.NodeName() != "main"
	}
	cl, err := Snapshot(context.Background(), root, vtree.NewWindow(600), WithFilter(spy))
	require.NoError(t, err)
	require.NotNil(t, cl, "root of a snapshot is never filtered")
	assert.Equal(t, []string{"section", "footer"}, visited)
	assert.Equal(t, []string{"footer"}, tags(cl))
	//
	excluded, err := New(vtree.NewWindow(600), WithFilter(spy)).Clone(context.Background(),
		root.ChildNodes()[0], false)
	require.NoError(t, err)
	assert.Nil(t, excluded)
}

func TestCloningIsRepeatable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domclone.clone")
	defer teardown()
	//
	root := vtree.NewElement("div")
	require.NoError(t, root.SetStyleText("color: red; font-size: 20px; display: block"))
	p := vtree.NewElement("p").AppendChild(vtree.NewText("text"))
	require.NoError(t, p.SetStyleText("margin: 0px; font-size: 13.5px"))
	root.AppendChild(p, vtree.NewElement("span"))
	w := vtree.NewWindow(600)
	//
	var out [2]bytes.Buffer
	for i := range out {
		cl, err := Snapshot(context.Background(), root, w)
		require.NoError(t, err)
		assert.Equal(t, []string{"p", "span"}, tags(cl))
		require.NoError(t, Render(&out[i], cl))
	}
	assert.Equal(t, out[0].String(), out[1].String())
	assert.Equal(t, style.Property("20px"), root.Style().PropertyValue("font-size"))
}

func TestOriginalIsNotModified(t *testing.T) {
	root := vtree.NewElement("div", vtree.Attr("style", "color: blue"))
	input := vtree.NewElement("input").SetValue("typed")
	root.AppendChild(input)
	cl, err := Snapshot(context.Background(), root, vtree.NewWindow(600))
	require.NoError(t, err)
	cl.SetAttribute("id", "changed")
	cl.ChildNodes()[0].SetAttribute("value", "other")
	_, ok := dom.Attr(root, "id")
	assert.False(t, ok)
	_, ok = dom.Attr(input, "value")
	assert.False(t, ok)
	assert.Len(t, root.ChildNodes(), 1)
}

func TestShadowRootAndSlots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domclone.clone")
	defer teardown()
	//
	host := vtree.NewElement("x-card")
	light := vtree.NewElement("p").AppendChild(vtree.NewText("light"))
	host.AppendChild(light, vtree.NewElement("ignored"))
	slot := vtree.NewElement("slot").AppendChild(vtree.NewElement("em"))
	slot.Assign(light)
	host.AttachShadow().AppendChild(vtree.NewElement("h2"), slot)
	//
	cl, err := Snapshot(context.Background(), host, vtree.NewWindow(600))
	require.NoError(t, err)
	assert.Equal(t, []string{"h2", "slot"}, tags(cl), "shadow content replaces light children")
	slotClone := cl.ChildNodes()[1]
	assert.Equal(t, []string{"p"}, tags(slotClone), "assigned nodes are projected")
	assert.Equal(t, "light", slotClone.TextContent())
	//
	slot.Assign()
	cl, err = Snapshot(context.Background(), host, vtree.NewWindow(600))
	require.NoError(t, err)
	assert.Equal(t, []string{"em"}, tags(cl.ChildNodes()[1]), "unassigned slot shows fallback content")
}

func TestPseudoClonerIsCalledForElements(t *testing.T) {
	root := vtree.NewElement("div").AppendChild(
		vtree.NewText("t"),
		vtree.NewElement("span"),
		vtree.NewElement("canvas").SetCanvasDataURL("data:image/png;base64,AAAA"),
	)
	var calls []string
	pseudo := PseudoClonerFunc(func(env dom.Environment, original dom.Node, clone *Node) {
		calls = append(calls, original.NodeName()+"/"+clone.Tag())
	})
	_, err := Snapshot(context.Background(), root, vtree.NewWindow(600), WithPseudoCloner(pseudo))
	require.NoError(t, err)
	assert.Equal(t, []string{"span/span", "div/div"}, calls)
}

func TestCloneErrors(t *testing.T) {
	root := vtree.NewElement("div").AppendChild(vtree.NewElement("span"))
	_, err := New(nil).Clone(context.Background(), root, true)
	assert.True(t, errors.Is(err, ErrNoEnvironment))
	_, err = New(vtree.NewWindow(600)).Clone(context.Background(), nil, true)
	assert.True(t, errors.Is(err, ErrNilNode))
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Snapshot(ctx, root, vtree.NewWindow(600))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestKindOf(t *testing.T) {
	for _, tc := range []struct {
		node dom.Node
		kind Kind
	}{
		{vtree.NewText("x"), KindText},
		{vtree.NewComment("x"), KindOther},
		{vtree.NewElement("div"), KindElement},
		{vtree.NewElement("canvas"), KindCanvas},
		{vtree.NewElement("video"), KindVideo},
		{vtree.NewElement("video", vtree.Attr("poster", "")), KindVideo},
		{vtree.NewElement("video", vtree.Attr("poster", "p.png")), KindVideoPoster},
		{vtree.NewElement("input"), KindTextInput},
		{vtree.NewElement("textarea"), KindTextarea},
		{vtree.NewElement("select"), KindSelect},
		{vtree.NewElement("slot"), KindSlot},
	} {
		assert.Equal(t, tc.kind, KindOf(tc.node), tc.node.NodeName())
	}
	assert.Equal(t, "video-with-poster", KindVideoPoster.String())
}
