/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/domclone/dom/style"
	"github.com/npillmayer/domclone/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'domclone.html'.
func tracer() tracing.Trace {
	return tracing.Select("domclone.html")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses the text of a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("douceuradapter: cannot parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// MustParse parses the text of a stylesheet and panics on error.
// It is intended for stylesheets defined in code.
func MustParse(text string) *CSSStyles {
	sheet, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() { // foreign implementation: copy rule by rule
		cr := css.NewRule(css.QualifiedRule)
		cr.Prelude = r.Selector()
		for _, key := range r.Properties() {
			cr.Declarations = append(cr.Declarations, &css.Declaration{
				Property:  key,
				Value:     r.Value(key).String(),
				Important: r.IsImportant(key),
			})
		}
		sheet.css.Rules = append(sheet.css.Rules, cr)
	}
}

// Rules returns all the style rules of a stylesheet. At-rules are skipped.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping at-rule %s", r.Name)
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) style.Property {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements searches an HTML parse tree for embedded <style>s.
// It returns the content of style-elements as style sheets, in document
// order. Content of <template> elements is not searched, as it does not
// belong to the document (see ExtractTemplateStyles).
// Style elements which cannot be parsed are skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	extractStyles(htmldoc, &sheets)
	return sheets
}

// ExtractTemplateStyles returns the <style>s within a <template> element,
// e.g. the stylesheets of a declarative shadow root. Nested templates are
// not searched.
func ExtractTemplateStyles(template *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	if template == nil {
		return sheets
	}
	for ch := template.FirstChild; ch != nil; ch = ch.NextSibling {
		extractStyles(ch, &sheets)
	}
	return sheets
}

func extractStyles(h *html.Node, sheets *[]*CSSStyles) {
	if h == nil {
		return
	}
	if h.Type == html.ElementNode {
		switch h.DataAtom {
		case atom.Template:
			return
		case atom.Style:
			if c, err := Parse(textOf(h)); err == nil {
				*sheets = append(*sheets, c)
			} else {
				tracer().Errorf("ignoring <style>: %v", err)
			}
			return
		}
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		extractStyles(ch, sheets)
	}
}

func textOf(h *html.Node) string {
	var b strings.Builder
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			b.WriteString(ch.Data)
		}
	}
	return b.String()
}
