package clone

import (
	"context"

	"github.com/npillmayer/domclone/dom"
)

// attachChildren clones the effective children of n and appends them to cl.
//
// Children are cloned one at a time, in source order: a child's clone,
// including all of its descendants, is complete before the next sibling is
// started. Replaced elements and videos get no children. Children excluded by the filter are skipped, thus the remaining
// clones keep the relative order of their originals.
func (c *Cloner) attachChildren(ctx context.Context, n dom.Node, kind Kind, cl *Node) (*Node, error) {
	if kind.isVideo() || cl.Replaced() {
		return cl, nil
	}
	children := effectiveChildren(n, kind)
	if len(children) == 0 {
		return cl, nil
	}
	for _, child := range children {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		chClone, err := c.Clone(ctx, child, false)
		if err != nil {
			return nil, err
		}
		if chClone != nil {
			cl.AppendChild(chClone)
		}
	}
	return cl, nil
}

// effectiveChildren returns the nodes rendered as children of n:
// nodes assigned to a slot, or else the content of a shadow root, or else
// the direct children.
func effectiveChildren(n dom.Node, kind Kind) []dom.Node {
	if kind == KindSlot {
		if assigned := n.AssignedNodes(); len(assigned) > 0 {
			return assigned
		}
	}
	if shadow, ok := n.ShadowRoot(); ok {
		return shadow
	}
	return n.ChildNodes()
}
