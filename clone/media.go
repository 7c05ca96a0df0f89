package clone

import (
	"context"
	"errors"
	"fmt"

	"github.com/npillmayer/domclone/dom"
	"golang.org/x/net/html"
)

// ErrNoEmbedder is returned when a resource has to be embedded, but the Cloner
// has not been configured with an Embedder.
var ErrNoEmbedder = errors.New("clone: no resource embedder configured")

// cloneSingle produces the initial clone of a node, without children.
// Canvases with drawn content and videos with a poster are replaced by images.
func (c *Cloner) cloneSingle(ctx context.Context, n dom.Node, kind Kind) (*Node, error) {
	switch kind {
	case KindCanvas:
		return c.cloneCanvas(n)
	case KindVideoPoster:
		return c.cloneVideoPoster(ctx, n)
	}
	return shallowClone(n), nil
}

func (c *Cloner) cloneCanvas(n dom.Node) (*Node, error) {
	dataURL, err := n.(dom.Canvas).ToDataURL()
	if err != nil {
		tracer().Errorf("clone: cannot serialize canvas: %v", err)
		return nil, fmt.Errorf("clone: cannot serialize canvas: %w", err)
	}
	if dataURL == dom.EmptyCanvasDataURL {
		tracer().Debugf("clone: canvas is empty, cloning structure only")
		return shallowClone(n), nil
	}
	return replacementImage(n, dataURL), nil
}

func (c *Cloner) cloneVideoPoster(ctx context.Context, n dom.Node) (*Node, error) {
	poster, _ := dom.Attr(n, "poster")
	if c.embedder == nil {
		return nil, fmt.Errorf("clone: video poster %q: %w", poster, ErrNoEmbedder)
	}
	mimeType := c.mimeType(poster)
	dataURL, err := c.embedder.ResourceToDataURL(ctx, poster, mimeType, c.resources)
	if err != nil {
		tracer().Errorf("clone: cannot embed video poster %q: %v", poster, err)
		return nil, fmt.Errorf("clone: cannot embed video poster %q: %w", poster, err)
	}
	return replacementImage(n, dataURL), nil
}

// replacementImage creates an image element showing src, which takes the
// place of a media element. The intrinsic size attributes of the media
// element are kept.
func replacementImage(n dom.Node, src string) *Node {
	img := NewElement("img")
	img.replaced = true
	img.SetAttribute("src", src)
	for _, key := range []string{"width", "height"} {
		if v, ok := dom.Attr(n, key); ok {
			img.SetAttribute(key, v)
		}
	}
	return img
}

// shallowClone copies a node's type, name, attributes and character data.
// The inline style attribute of an element initializes the clone's style object.
func shallowClone(n dom.Node) *Node {
	cl := newNode(n.NodeType(), n.NodeName(), n.NodeValue())
	if n.NodeType() != html.ElementNode {
		return cl
	}
	for _, a := range n.Attributes() {
		if a.Namespace == "" && a.Key == "style" {
			if err := cl.style.SetCSSText(a.Val); err != nil {
				tracer().Debugf("clone: ignoring malformed style attribute of %s", n.NodeName())
			}
			continue
		}
		cl.attrs = append(cl.attrs, a)
	}
	return cl
}
