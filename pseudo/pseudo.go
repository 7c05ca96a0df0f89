package pseudo

import (
	"strings"

	"github.com/google/uuid"
	"github.com/npillmayer/domclone/clone"
	"github.com/npillmayer/domclone/dom"
	"github.com/npillmayer/domclone/dom/style"
)

// Elements lists the pseudo-elements which are cloned.
var Elements = []string{"before", "after"}

// voidElements cannot have children in serialized HTML.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// Cloner clones pseudo-elements. It implements clone.PseudoCloner.
// The zero value is ready to use.
type Cloner struct {
	newID func() string
}

// Option is a type to help initializing pseudo-element Cloners.
type Option func(*Cloner)

// WithIDs sets a generator for class names. The default generates names from
// random UUIDs.
func WithIDs(f func() string) Option {
	return func(c *Cloner) {
		c.newID = f
	}
}

// New creates a pseudo-element cloner.
func New(opts ...Option) *Cloner {
	c := &Cloner{}
	for _, option := range opts {
		option(c)
	}
	return c
}

// ClonePseudoElements is part of interface clone.PseudoCloner.
// Environments which are unable to report styles of pseudo-elements, i.e.
// do not implement dom.PseudoStyler, are silently ignored.
func (c *Cloner) ClonePseudoElements(env dom.Environment, original dom.Node, cl *clone.Node) {
	styler, ok := env.(dom.PseudoStyler)
	if !ok || !cl.IsElement() {
		return
	}
	if voidElements[cl.Tag()] {
		tracer().Debugf("pseudo: void element %s cannot hold a style element", cl.Tag())
		return
	}
	for _, pseudo := range Elements {
		c.clonePseudoElement(styler, original, cl, pseudo)
	}
}

func (c *Cloner) clonePseudoElement(styler dom.PseudoStyler, original dom.Node, cl *clone.Node, pseudo string) {
	st := styler.PseudoStyle(original, pseudo)
	if st == nil {
		return
	}
	content := st.PropertyValue("content")
	if content.IsEmpty() || content == "none" {
		return
	}
	class := c.className()
	cl.AddClass(class)
	rule := StyleRule(class, pseudo, st)
	tracer().Debugf("pseudo: %s", rule)
	cl.AppendChild(clone.NewElement("style").AppendChild(clone.NewText(rule)))
}

func (c *Cloner) className() string {
	if c.newID != nil {
		return c.newID()
	}
	return "domclone-" + uuid.NewString()
}

// StyleRule creates a CSS rule for the pseudo-element of elements with a
// given class. If the style offers a serialized form, it is used together
// with the content property, stripped of quotes. Otherwise all properties
// are listed, each one followed by its priority. Any '<' is escaped, so the
// rule cannot end an enclosing style element.
func StyleRule(class, pseudo string, st style.ComputedStyle) string {
	var b strings.Builder
	b.WriteString("." + class + ":" + pseudo + "{")
	if text := st.CSSText(); text != "" {
		content := strings.NewReplacer("'", "", `"`, "").Replace(st.PropertyValue("content").String())
		b.WriteString(text + " content: '" + content + "';")
	} else {
		for i := 0; i < st.Len(); i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			key := st.Item(i)
			b.WriteString(key + ": " + st.PropertyValue(key).String())
			if st.PropertyPriority(key) == style.Important {
				b.WriteString(" !important")
			}
			b.WriteByte(';')
		}
	}
	b.WriteByte('}')
	return strings.ReplaceAll(b.String(), "<", `\3C `)
}

var _ clone.PseudoCloner = &Cloner{}
