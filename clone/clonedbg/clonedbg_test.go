package clonedbg

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/npillmayer/domclone/clone"
	"github.com/npillmayer/domclone/dom/vtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T) *clone.Node {
	p := vtree.NewElement("p").AppendChild(vtree.NewText("Hello World, this is a longer text"))
	require.NoError(t, p.SetStyleText("display: block; font-size: 20px"))
	root := vtree.NewElement("div").AppendChild(
		p,
		vtree.NewElement("canvas").SetCanvasDataURL("data:image/png;base64,AAAA"),
	)
	cl, err := clone.Snapshot(context.Background(), root, vtree.NewWindow(600))
	require.NoError(t, err)
	return cl
}

func TestPrint(t *testing.T) {
	s := Print(snapshot(t))
	lines := strings.Split(strings.TrimSpace(s), "\n")
	require.Len(t, lines, 4, s)
	assert.Equal(t, "<div>", lines[0])
	assert.Contains(t, lines[1], "<p> {display: block; font-size: 19.9px;}")
	assert.Contains(t, lines[2], `"Hello World, this is a longer …"`)
	assert.Contains(t, lines[3], "<img> (replaced)")
	assert.Equal(t, "<nil>\n", Print(nil))
}

func TestToGraphViz(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(snapshot(t), &buf, nil))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `node00001	[ label="div"`)
	assert.Contains(t, dot, "node00001 -> node00002 [weight=1]")
	assert.Contains(t, dot, "<td>19.9px</td>")
	assert.Contains(t, dot, "fillcolor=gold")
	//
	buf.Reset()
	require.NoError(t, ToGraphViz(snapshot(t), &buf, []string{"color"}))
	assert.NotContains(t, buf.String(), "19.9px")
}
