package clone

import (
	"context"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/domclone/dom/vtree"
	"github.com/npillmayer/domclone/resource"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyCanvasIsClonedStructurally(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domclone.clone")
	defer teardown()
	//
	canvas := vtree.NewElement("canvas", vtree.Attr("width", "0"))
	canvas.AppendChild(vtree.NewText("fallback"))
	cl, err := Snapshot(context.Background(), canvas, vtree.NewWindow(600))
	require.NoError(t, err)
	assert.Equal(t, "canvas", cl.Tag())
	assert.False(t, cl.Replaced())
	assert.Equal(t, "fallback", cl.TextContent())
}

func TestDrawnCanvasBecomesImage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domclone.clone")
	defer teardown()
	//
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{G: 0xff, A: 0xff})
	canvas := vtree.NewElement("canvas", vtree.Attr("width", "4"), vtree.Attr("height", "4"),
		vtree.Attr("id", "chart"))
	canvas.SetCanvas(img)
	require.NoError(t, canvas.SetStyleText("border: 1px solid red"))
	root := vtree.NewElement("div").AppendChild(canvas)
	//
	cl, err := Snapshot(context.Background(), root, vtree.NewWindow(600))
	require.NoError(t, err)
	replacement := cl.ChildNodes()[0]
	assert.Equal(t, "img", replacement.Tag())
	assert.True(t, replacement.Replaced())
	src, _ := replacement.Attr("src")
	assert.True(t, strings.HasPrefix(src, "data:image/png;base64,"), src)
	w, _ := replacement.Attr("width")
	assert.Equal(t, "4", w)
	_, ok := replacement.Attr("id")
	assert.False(t, ok)
	assert.Equal(t, 0, replacement.Style().Len(), "replacement images are not decorated")
}

func TestDrawnCanvasDropsFallbackContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domclone.clone")
	defer teardown()
	//
	canvas := vtree.NewElement("canvas").SetCanvasDataURL("data:image/png;base64,AAAA")
	canvas.AppendChild(vtree.NewText("your browser does not support canvas"))
	root := vtree.NewElement("div").AppendChild(canvas)
	cl, err := Snapshot(context.Background(), root, vtree.NewWindow(600))
	require.NoError(t, err)
	replacement := cl.ChildNodes()[0]
	assert.Equal(t, "img", replacement.Tag())
	assert.Empty(t, replacement.ChildNodes())
	var out strings.Builder
	require.NoError(t, Render(&out, cl))
	assert.Equal(t, `<div><img src="data:image/png;base64,AAAA"/></div>`, out.String())
}

func TestCanvasErrorAbortsClone(t *testing.T) {
	canvas := vtree.NewElement("canvas").SetCanvasError(errors.New("tainted canvas"))
	_, err := Snapshot(context.Background(), canvas, vtree.NewWindow(600))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tainted canvas")
}

func TestVideoChildrenAreNotCloned(t *testing.T) {
	video := vtree.NewElement("video", vtree.Attr("src", "movie.mp4")).AppendChild(
		vtree.NewElement("source", vtree.Attr("src", "movie.webm")),
		vtree.NewText("no video support"),
	)
	cl, err := Snapshot(context.Background(), video, vtree.NewWindow(600))
	require.NoError(t, err)
	assert.Equal(t, "video", cl.Tag())
	assert.Empty(t, cl.ChildNodes())
}

func TestVideoPosterIsEmbedded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domclone.clone")
	defer teardown()
	//
	png := []byte("\x89PNG\r\n\x1a\nposter")
	conv := resource.NewConverter(resource.FSFetcher{FS: fstest.MapFS{
		"media/poster.png": &fstest.MapFile{Data: png},
	}})
	video := vtree.NewElement("video", vtree.Attr("poster", "media/poster.png"),
		vtree.Attr("height", "240")).AppendChild(vtree.NewElement("source"))
	root := vtree.NewElement("figure").AppendChild(video)
	//
	cl, err := Snapshot(context.Background(), root, vtree.NewWindow(600), WithEmbedder(conv))
	require.NoError(t, err)
	replacement := cl.ChildNodes()[0]
	assert.Equal(t, "img", replacement.Tag())
	src, _ := replacement.Attr("src")
	assert.Equal(t, resource.DataURL("image/png", png), src)
	h, _ := replacement.Attr("height")
	assert.Equal(t, "240", h)
	assert.Empty(t, replacement.ChildNodes())
}

type failingEmbedder struct {
	urls []string
}

func (e *failingEmbedder) ResourceToDataURL(ctx context.Context, url, mimeType string,
	opts resource.Options) (string, error) {
	e.urls = append(e.urls, url+" "+mimeType)
	return "", resource.ErrNotFound
}

func TestFailingPosterFailsSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domclone.clone")
	defer teardown()
	//
	root := vtree.NewElement("div").AppendChild(
		vtree.NewElement("p"),
		vtree.NewElement("section").AppendChild(
			vtree.NewElement("video", vtree.Attr("poster", "https://example.com/p.jpg?v=2")),
		),
		vtree.NewElement("p"),
	)
	e := &failingEmbedder{}
	cl, err := Snapshot(context.Background(), root, vtree.NewWindow(600), WithEmbedder(e))
	assert.Nil(t, cl)
	assert.True(t, errors.Is(err, resource.ErrNotFound))
	assert.Equal(t, []string{"https://example.com/p.jpg?v=2 image/jpeg"}, e.urls)
	//
	_, err = Snapshot(context.Background(), root, vtree.NewWindow(600))
	assert.True(t, errors.Is(err, ErrNoEmbedder))
}

func TestMIMEResolverOption(t *testing.T) {
	e := &failingEmbedder{}
	video := vtree.NewElement("video", vtree.Attr("poster", "poster"))
	_, err := Snapshot(context.Background(), video, vtree.NewWindow(600), WithEmbedder(e),
		WithMIMEResolver(func(string) string { return "image/webp" }))
	require.Error(t, err)
	assert.Equal(t, []string{"poster image/webp"}, e.urls)
}
