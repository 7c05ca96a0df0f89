package vtree

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/npillmayer/domclone/dom"
)

// canvasContent is the drawn content of a canvas element. Content is either
// given as an image or as an already serialized data URL.
type canvasContent struct {
	img     image.Image
	dataURL string
	err     error // canvas refuses serialization, e.g. tainted by cross-origin content
}

// SetCanvas sets the drawn pixel content of a canvas element.
func (n *Node) SetCanvas(img image.Image) *Node {
	n.canvas = canvasContent{img: img}
	return n
}

// SetCanvasDataURL sets the content of a canvas element in serialized form,
// as reported by a browser.
func (n *Node) SetCanvasDataURL(url string) *Node {
	n.canvas = canvasContent{dataURL: url}
	return n
}

// SetCanvasError lets a canvas fail serialization with err, as browsers do
// for canvases tainted by cross-origin content.
func (n *Node) SetCanvasError(err error) *Node {
	n.canvas = canvasContent{err: err}
	return n
}

// ToDataURL is part of interface dom.Canvas. A canvas without content, or
// with a drawing area of size zero, serializes to dom.EmptyCanvasDataURL.
// Content is encoded as PNG.
func (n *Node) ToDataURL() (string, error) {
	if n.canvas.err != nil {
		return "", n.canvas.err
	}
	if n.canvas.dataURL != "" {
		return n.canvas.dataURL, nil
	}
	img := n.canvas.img
	if img == nil || img.Bounds().Empty() {
		return dom.EmptyCanvasDataURL, nil
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("vtree: cannot encode canvas content: %w", err)
	}
	tracer().Debugf("canvas %v serialized to %d bytes of PNG", n, buf.Len())
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
