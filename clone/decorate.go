package clone

import (
	"github.com/npillmayer/domclone/dom"
)

// decorate transfers rendering state of original onto its finished clone:
// computed style, pseudo-elements and form values. Only element clones are
// decorated. Images replacing a media node stand for the pixel content of
// the original and are left alone.
func (c *Cloner) decorate(original dom.Node, kind Kind, cl *Node) *Node {
	if !cl.IsElement() || cl.Replaced() {
		return cl
	}
	c.applyStyle(original, cl)
	if c.pseudo != nil {
		c.pseudo.ClonePseudoElements(c.env, original, cl)
	}
	copyInputValue(original, kind, cl)
	if kind == KindSelect {
		copySelectValue(original, cl)
	}
	return cl
}
