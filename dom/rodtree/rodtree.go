package rodtree

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/npillmayer/domclone/dom/style"
	"github.com/npillmayer/domclone/dom/vtree"
	"golang.org/x/net/html"
)

//go:embed capture.js
var captureJS string

// ErrNotFound is returned if no element matches the selector of a capture.
var ErrNotFound = errors.New("rodtree: no element matches selector")

// Capture snapshots the subtree of the first element matching selector in a
// page. An empty selector captures the complete document.
func Capture(ctx context.Context, page *rod.Page, selector string) (*vtree.Node, *vtree.Window, error) {
	res, err := page.Context(ctx).Eval(captureJS, selector)
	if err != nil {
		return nil, nil, fmt.Errorf("rodtree: capture %q: %w", selector, err)
	}
	return Decode([]byte(res.Value.Str()))
}

// W3C node types, as reported by the browser.
const (
	elementNode = 1
	textNode    = 3
	commentNode = 8
)

type capture struct {
	ScrollY     float64       `json:"scrollY"`
	InnerHeight float64       `json:"innerHeight"`
	Parent      *capturedNode `json:"parent"` // parent element of root, without children
	Root        *capturedNode `json:"root"`
}

type capturedNode struct {
	ID          int             `json:"id"`
	Type        int             `json:"type"`
	Name        string          `json:"name"`
	Value       string          `json:"value"`
	Attrs       [][2]string     `json:"attrs"`
	Style       [][3]string     `json:"style"`
	CSSText     string          `json:"cssText"`
	Before      [][3]string     `json:"before"`
	After       [][3]string     `json:"after"`
	ScrollTop   float64         `json:"scrollTop"`
	ScrollLeft  float64         `json:"scrollLeft"`
	FormValue   *string         `json:"formValue"`
	Canvas      string          `json:"canvas"`
	CanvasError string          `json:"canvasError"`
	Shadow      []*capturedNode `json:"shadow"`
	Children    []*capturedNode `json:"children"`
	Assigned    []int           `json:"assigned"`
}

// Decode decodes the output of the capture script into a visual tree and its
// window. It is exported for clients which run the capture script by other
// means.
//
// If the capture records the parent element of the root, the root is attached
// to a stand-in for it. The stand-in carries the parent's style and scroll
// state, but no other children, so scroll corrections apply to the root
// as they do in the page.
func Decode(data []byte) (*vtree.Node, *vtree.Window, error) {
	var c capture
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, nil, fmt.Errorf("rodtree: cannot decode capture: %w", err)
	}
	if c.Root == nil {
		return nil, nil, ErrNotFound
	}
	d := decoder{
		nodes: make(map[int]*vtree.Node),
	}
	root := d.node(c.Root)
	if root == nil {
		return nil, nil, fmt.Errorf("rodtree: captured root is of unsupported node type %d", c.Root.Type)
	}
	if p := c.Parent; p != nil && p.Type == elementNode {
		p.Children, p.Shadow, p.Assigned = nil, nil, nil
		d.element(p).AppendChild(root)
	}
	for slot, ids := range d.slots {
		var assigned []*vtree.Node
		for _, id := range ids {
			if n, ok := d.nodes[id]; ok {
				assigned = append(assigned, n)
			}
		}
		slot.Assign(assigned...)
	}
	w := vtree.NewWindow(c.InnerHeight)
	w.PageYOffset = c.ScrollY
	w.SerializedStyles = c.Root.CSSText != ""
	tracer().Debugf("rodtree: decoded %d nodes", len(d.nodes))
	return root, w, nil
}

type decoder struct {
	nodes map[int]*vtree.Node
	slots map[*vtree.Node][]int
}

func (d *decoder) node(cn *capturedNode) *vtree.Node {
	var n *vtree.Node
	switch cn.Type {
	case textNode:
		n = vtree.NewText(cn.Value)
	case commentNode:
		n = vtree.NewComment(cn.Value)
	case elementNode:
		n = d.element(cn)
	default:
		tracer().Debugf("rodtree: skipping node %s of type %d", cn.Name, cn.Type)
		return nil
	}
	d.nodes[cn.ID] = n
	for _, ch := range cn.Children {
		if c := d.node(ch); c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

func (d *decoder) element(cn *capturedNode) *vtree.Node {
	attrs := make([]html.Attribute, len(cn.Attrs))
	for i, a := range cn.Attrs {
		attrs[i] = html.Attribute{Key: a[0], Val: a[1]}
	}
	n := vtree.NewElement(cn.Name, attrs...)
	n.SetStyle(declarations(cn.Style))
	if cn.Before != nil {
		n.SetPseudoStyle("before", declarations(cn.Before))
	}
	if cn.After != nil {
		n.SetPseudoStyle("after", declarations(cn.After))
	}
	n.SetScroll(cn.ScrollTop, cn.ScrollLeft)
	if cn.FormValue != nil {
		n.SetValue(*cn.FormValue)
	}
	switch {
	case cn.CanvasError != "":
		n.SetCanvasError(errors.New(cn.CanvasError))
	case cn.Canvas != "":
		n.SetCanvasDataURL(cn.Canvas)
	}
	if cn.Shadow != nil {
		shadow := n.AttachShadow()
		for _, ch := range cn.Shadow {
			if c := d.node(ch); c != nil {
				shadow.AppendChild(c)
			}
		}
	}
	if cn.Assigned != nil {
		if d.slots == nil {
			d.slots = make(map[*vtree.Node][]int)
		}
		d.slots[n] = cn.Assigned
	}
	return n
}

func declarations(list [][3]string) *style.Declarations {
	decls := style.NewDeclarations()
	for _, d := range list {
		decls.SetProperty(d[0], style.Property(d[1]), d[2])
	}
	return decls
}
