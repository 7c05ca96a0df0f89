package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Declarations is an ordered, mutable block of style declarations, comparable
// to a CSSStyleDeclaration of a browser. Cloned nodes carry one of these as
// their style object, and in-memory visual trees use them as computed style
// snapshots.
//
// The zero value is not usable, use NewDeclarations. A nil *Declarations is a
// legal empty read-only style.
type Declarations struct {
	decls []Declaration
	index map[string]int
}

// NewDeclarations creates an empty declaration block.
func NewDeclarations() *Declarations {
	return &Declarations{index: make(map[string]int)}
}

// ParseDeclarations creates a declaration block from a CSS declaration list,
// as found in a style attribute, e.g.
//
//     color: red; margin-top: 3px !important
//
func ParseDeclarations(text string) (*Declarations, error) {
	d := NewDeclarations()
	if err := d.SetCSSText(text); err != nil {
		return nil, err
	}
	return d, nil
}

// Len returns the number of declarations.
func (d *Declarations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.decls)
}

// Item returns the property key of the i-th declaration, or "".
func (d *Declarations) Item(i int) string {
	if i < 0 || i >= d.Len() {
		return ""
	}
	return d.decls[i].Key
}

// Declaration returns the full declaration for a key.
func (d *Declarations) Declaration(key string) (Declaration, bool) {
	if d == nil {
		return Declaration{}, false
	}
	i, ok := d.index[key]
	if !ok {
		return Declaration{}, false
	}
	return d.decls[i], true
}

// Has returns true if a declaration for key is present.
func (d *Declarations) Has(key string) bool {
	_, ok := d.Declaration(key)
	return ok
}

// PropertyValue returns the value of a property or NullStyle.
func (d *Declarations) PropertyValue(key string) Property {
	decl, _ := d.Declaration(key)
	return decl.Value
}

// PropertyPriority returns the priority of a property, either "" or Important.
func (d *Declarations) PropertyPriority(key string) string {
	decl, _ := d.Declaration(key)
	return decl.Priority
}

// SetProperty sets a property. An existing declaration for key keeps its
// position, new declarations are appended. Setting an empty value removes
// the property.
func (d *Declarations) SetProperty(key string, value Property, priority string) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return
	}
	if value.IsEmpty() {
		d.RemoveProperty(key)
		return
	}
	if priority != Important {
		priority = ""
	}
	if d.index == nil {
		d.index = make(map[string]int)
	}
	decl := Declaration{Key: key, Value: value, Priority: priority}
	if i, ok := d.index[key]; ok {
		d.decls[i] = decl
		return
	}
	d.index[key] = len(d.decls)
	d.decls = append(d.decls, decl)
}

// RemoveProperty removes a property and returns its former value.
func (d *Declarations) RemoveProperty(key string) Property {
	i, ok := d.index[key]
	if !ok {
		return NullStyle
	}
	old := d.decls[i].Value
	d.decls = append(d.decls[:i], d.decls[i+1:]...)
	delete(d.index, key)
	for j := i; j < len(d.decls); j++ {
		d.index[d.decls[j].Key] = j
	}
	return old
}

// CSSText serializes all declarations into a declaration list.
func (d *Declarations) CSSText() string {
	if d.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, decl := range d.decls {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(decl.String())
	}
	return b.String()
}

// SetCSSText replaces all declarations with the ones parsed from text.
// On a parse error, the declaration block remains unchanged.
func (d *Declarations) SetCSSText(text string) error {
	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ";") {
		text += ";" // terminate the last declaration for the parser
	}
	parsed, err := parser.ParseDeclarations(text)
	if err != nil {
		return fmt.Errorf("style: cannot parse declarations: %w", err)
	}
	d.decls = d.decls[:0]
	d.index = make(map[string]int, len(parsed))
	for _, p := range parsed {
		prio := ""
		if p.Important {
			prio = Important
		}
		d.SetProperty(p.Property, Property(p.Value), prio)
	}
	return nil
}

// All returns a copy of all declarations, in order.
func (d *Declarations) All() []Declaration {
	r := make([]Declaration, d.Len())
	if d != nil {
		copy(r, d.decls)
	}
	return r
}

// Copy returns an independent copy of a declaration block.
func (d *Declarations) Copy() *Declarations {
	c := NewDeclarations()
	for _, decl := range d.All() {
		c.SetProperty(decl.Key, decl.Value, decl.Priority)
	}
	return c
}

func (d *Declarations) String() string {
	return "{" + d.CSSText() + "}"
}

var _ ComputedStyle = (*Declarations)(nil)

// --- Opaque computed styles ------------------------------------------------

// Opaque wraps a computed style, hiding its serialized form. Many browsers
// return an empty cssText for computed styles; environments use Opaque to
// reproduce this behaviour.
func Opaque(cs ComputedStyle) ComputedStyle {
	if cs == nil {
		return nil
	}
	return opaque{cs}
}

type opaque struct {
	ComputedStyle
}

func (o opaque) CSSText() string {
	return ""
}
