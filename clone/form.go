package clone

import (
	"github.com/npillmayer/domclone/dom"
)

// copyInputValue freezes the current value of a textarea or an input
// element. A textarea's value becomes the clone's only content, which is
// plain text and never interpreted as markup. An input's value is written
// to the clone's value attribute.
func copyInputValue(original dom.Node, kind Kind, cl *Node) {
	fc, ok := original.(dom.FormControl)
	if !ok {
		return
	}
	switch kind {
	case KindTextarea:
		cl.SetTextContent(fc.Value())
	case KindTextInput:
		cl.SetAttribute("value", fc.Value())
	}
}

// copySelectValue marks the option of a cloned select element which matches
// the current value of the original. Only direct option children of the
// clone are considered, and the first match wins. If no option matches, the
// clone is left untouched.
func copySelectValue(original dom.Node, cl *Node) {
	fc, ok := original.(dom.FormControl)
	if !ok {
		return
	}
	value := fc.Value()
	for _, ch := range cl.ChildNodes() {
		if !ch.IsElement() || ch.Tag() != "option" {
			continue
		}
		if v, ok := ch.Attr("value"); ok && v == value {
			ch.SetAttribute("selected", "")
			return
		}
	}
}
