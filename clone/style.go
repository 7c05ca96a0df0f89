package clone

import (
	"math"

	"github.com/npillmayer/domclone/dom"
	"github.com/npillmayer/domclone/dom/style"
	"github.com/npillmayer/domclone/dom/style/css"
)

// scrollFix collects the scroll corrections which apply to a single element.
// The corrections are determined once per element, before any property is
// copied.
type scrollFix struct {
	hideOverflow   bool    // element scrolls itself
	ancestorScroll bool    // layout parent scrolls
	ancestorTop    float64 // scroll offset of the layout parent
	documentScroll bool    // layout parent is the scrolling document
	documentTop    float64 // scroll offset of the window
}

// applyStyle copies the computed style of original onto the style object of
// cl. If the environment offers a serialized form of the computed style, it
// is copied verbatim. Otherwise properties are copied one by one, with
// corrections for font rounding and for scroll offsets.
func (c *Cloner) applyStyle(original dom.Node, cl *Node) {
	target := cl.Style()
	if target == nil {
		return
	}
	source := c.env.ComputedStyle(original)
	if source == nil {
		tracer().Debugf("clone: no computed style for %s", original.NodeName())
		return
	}
	if text := source.CSSText(); text != "" {
		if err := target.SetCSSText(text); err == nil {
			target.SetProperty("transform-origin", source.PropertyValue("transform-origin"),
				source.PropertyPriority("transform-origin"))
			return
		}
		tracer().Infof("clone: cannot use serialized style of %s, copying properties", original.NodeName())
	}
	fix := c.scrollCorrections(original, source)
	topRewritten := false
	for i := 0; i < source.Len(); i++ {
		key := source.Item(i)
		value := source.PropertyValue(key)
		switch key {
		case "font-size":
			if px, ok := css.Pixels(value); ok {
				value = css.Px(math.Floor(px) - 0.1)
			}
		case "overflow-y":
			if fix.hideOverflow {
				value = css.OverflowHidden.Property()
			}
		case "position":
			if fix.ancestorScroll || fix.documentScroll {
				value = css.Relative().Property()
			}
		case "top":
			if fix.ancestorScroll {
				value = negPx(fix.ancestorTop)
				topRewritten = true
			}
			if fix.documentScroll {
				value = negPx(fix.documentTop)
				topRewritten = true
			}
			if topRewritten {
				for _, k := range insetBlock {
					target.RemoveProperty(k)
				}
			}
		case "inset-block", "inset-block-start", "inset-block-end":
			if topRewritten {
				continue
			}
		}
		target.SetProperty(key, value, source.PropertyPriority(key))
	}
}

// insetBlock lists the shorthand and longhands which would override a
// rewritten top.
var insetBlock = []string{"inset-block", "inset-block-start", "inset-block-end"}

// scrollCorrections inspects the scroll state of an element, its layout
// parent and the document.
//
// The document is considered to be scrolling the element if the parent's
// min-height equals the viewport height and is smaller than the element's
// own height.
func (c *Cloner) scrollCorrections(original dom.Node, source style.ComputedStyle) scrollFix {
	var fix scrollFix
	if original.ScrollTop() > 0 && css.Overflow(source.PropertyValue("overflow-y")).Scrolls() {
		fix.hideOverflow = true
	}
	parent := dom.ParentElement(original)
	if parent == nil {
		return fix
	}
	parentStyle := c.env.ComputedStyle(parent)
	if parentStyle == nil {
		return fix
	}
	if parent.ScrollTop() > 0 && css.Overflow(parentStyle.PropertyValue("overflow-y")).Scrolls() {
		fix.ancestorScroll = true
		fix.ancestorTop = parent.ScrollTop()
	}
	pinned := css.PositionPattern[bool](css.Position(source.PropertyValue("position"))).
		OneOf(css.PositionPatterns[bool]{Fixed: true})
	if pinned {
		return fix
	}
	minHeight, ok := css.Pixels(parentStyle.PropertyValue("min-height"))
	if !ok || minHeight != c.env.InnerHeight() {
		return fix
	}
	if height, ok := css.Number(source.PropertyValue("height")); ok && minHeight < height {
		fix.documentScroll = true
		fix.documentTop = c.env.ScrollY()
	}
	return fix
}

// negPx formats a negated offset. An offset of zero results in "0px".
func negPx(offset float64) style.Property {
	if offset == 0 {
		return css.Px(0)
	}
	return css.Px(-offset)
}
