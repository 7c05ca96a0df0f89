package vtree

import (
	"github.com/npillmayer/domclone/dom"
	"github.com/npillmayer/domclone/dom/style"
)

// Window is the environment of an in-memory visual tree. It implements
// dom.Environment and dom.PseudoStyler for nodes of type *vtree.Node.
type Window struct {
	PageYOffset    float64 // vertical scroll offset of the window
	ViewportHeight float64 // height of the viewport (window.innerHeight)
	// If SerializedStyles is set, computed styles report their serialized
	// form (cssText). Otherwise CSSText() of a computed style is empty, as
	// with most current browsers.
	SerializedStyles bool
}

// NewWindow creates a window environment with a viewport height and no scrolling.
func NewWindow(viewportHeight float64) *Window {
	return &Window{ViewportHeight: viewportHeight}
}

// ComputedStyle is part of interface dom.Environment. It returns nil for
// non-element nodes and for nodes not of type *vtree.Node.
func (w *Window) ComputedStyle(n dom.Node) style.ComputedStyle {
	vn, ok := n.(*Node)
	if !ok || vn == nil || !dom.IsElement(vn) || vn.computed == nil {
		return nil
	}
	return w.present(vn.computed)
}

// PseudoStyle is part of interface dom.PseudoStyler.
func (w *Window) PseudoStyle(n dom.Node, pseudo string) style.ComputedStyle {
	vn, ok := n.(*Node)
	if !ok || vn == nil {
		return nil
	}
	decls := vn.PseudoStyle(pseudo)
	if decls == nil {
		return nil
	}
	return w.present(decls)
}

func (w *Window) present(decls *style.Declarations) style.ComputedStyle {
	if w.SerializedStyles {
		return decls
	}
	return style.Opaque(decls)
}

// ScrollY is part of interface dom.Environment.
func (w *Window) ScrollY() float64 {
	return w.PageYOffset
}

// InnerHeight is part of interface dom.Environment.
func (w *Window) InnerHeight() float64 {
	return w.ViewportHeight
}

var _ dom.Environment = &Window{}
var _ dom.PseudoStyler = &Window{}
