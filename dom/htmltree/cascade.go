package htmltree

import (
	"math"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/domclone/dom/style"
	"github.com/npillmayer/domclone/dom/style/css"
	"github.com/npillmayer/domclone/dom/style/cssom"
	"golang.org/x/net/html"
)

// rule is a single compiled selector of a stylesheet rule, together with the
// declarations of the rule.
type rule struct {
	sel    cascadia.Sel
	pseudo string // "", "before" or "after"
	decls  []style.Declaration
}

// ruleSet is a list of rules in source order.
type ruleSet []rule

// compile compiles the rules of stylesheets. Selectors which cascadia is
// unable to parse are skipped, together with their declarations.
func compile(sheets []cssom.StyleSheet) ruleSet {
	var rs ruleSet
	for _, sheet := range sheets {
		if sheet == nil {
			continue
		}
		for _, r := range sheet.Rules() {
			decls := declarationsOf(r)
			for _, part := range splitSelectors(r.Selector()) {
				text, pseudo := pseudoElement(part)
				sel, err := cascadia.Parse(text)
				if err != nil {
					tracer().Infof("htmltree: ignoring selector %q: %v", part, err)
					continue
				}
				rs = append(rs, rule{sel: sel, pseudo: pseudo, decls: decls})
			}
		}
	}
	return rs
}

func declarationsOf(r cssom.Rule) []style.Declaration {
	keys := r.Properties()
	decls := make([]style.Declaration, 0, len(keys))
	for _, key := range keys {
		d := style.Declaration{Key: strings.ToLower(key), Value: r.Value(key)}
		if r.IsImportant(key) {
			d.Priority = style.Important
		}
		decls = append(decls, d)
	}
	return decls
}

// splitSelectors splits a selector group at top-level commas.
func splitSelectors(group string) []string {
	var parts []string
	depth, start := 0, 0
	for i, c := range group {
		switch c {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(group[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(group[start:]))
}

// pseudoElement splits a trailing ::before or ::after (or their legacy
// single-colon forms) off a selector.
func pseudoElement(sel string) (string, string) {
	lower := strings.ToLower(sel)
	for _, pseudo := range []string{"before", "after"} {
		for _, suffix := range []string{"::" + pseudo, ":" + pseudo} {
			if strings.HasSuffix(lower, suffix) {
				rest := strings.TrimSpace(sel[:len(sel)-len(suffix)])
				if rest == "" {
					rest = "*"
				}
				return rest, pseudo
			}
		}
	}
	return sel, ""
}

// matching returns the rules matching an element, ordered by ascending
// specificity. Rules of equal specificity stay in source order.
func (rs ruleSet) matching(h *html.Node, pseudo string) []rule {
	var m []rule
	for _, r := range rs {
		if r.pseudo == pseudo && r.sel.Match(h) {
			m = append(m, r)
		}
	}
	sort.SliceStable(m, func(i, j int) bool {
		return m[i].sel.Specificity().Less(m[j].sel.Specificity())
	})
	return m
}

// specified collects the declarations applying to an element or one of its
// pseudo-elements, in cascade order: user agent rules, author rules, inline
// style, important author rules, important inline style.
func specified(h *html.Node, ua, author ruleSet, pseudo string) *style.Declarations {
	spec := style.NewDeclarations()
	set := func(decls []style.Declaration, important bool) {
		for _, d := range decls {
			if d.IsImportant() == important {
				spec.SetProperty(d.Key, d.Value, "")
			}
		}
	}
	for _, r := range ua.matching(h, pseudo) {
		set(r.decls, false)
	}
	authorRules := author.matching(h, pseudo)
	for _, r := range authorRules {
		set(r.decls, false)
	}
	var inline []style.Declaration
	if pseudo == "" {
		inline = inlineStyle(h)
	}
	set(inline, false)
	for _, r := range authorRules {
		set(r.decls, true)
	}
	set(inline, true)
	return spec
}

func inlineStyle(h *html.Node) []style.Declaration {
	for _, a := range h.Attr {
		if a.Namespace != "" || a.Key != "style" {
			continue
		}
		decls, err := style.ParseDeclarations(a.Val)
		if err != nil {
			tracer().Infof("htmltree: ignoring style attribute of <%s>: %v", h.Data, err)
			return nil
		}
		return decls.All()
	}
	return nil
}

// computed resolves specified declarations against the computed style of the
// parent. parent is nil for the root element.
func computed(display style.Property, spec, parent *style.Declarations) *style.Declarations {
	cs := style.NewDeclarations()
	cs.SetProperty("display", display, "")
	for _, d := range nonInherited {
		cs.SetProperty(d.Key, d.Value, "")
	}
	for _, d := range inherited {
		v := d.Value
		if parent.Has(d.Key) {
			v = parent.PropertyValue(d.Key)
		}
		cs.SetProperty(d.Key, v, "")
	}
	for _, d := range parent.All() {
		if style.IsCascading(d.Key) && !cs.Has(d.Key) {
			cs.SetProperty(d.Key, d.Value, "")
		}
	}
	parentFontSize := 16.0
	if px, ok := css.Pixels(parent.PropertyValue("font-size")); ok {
		parentFontSize = px
	}
	for _, d := range spec.All() {
		v := d.Value
		switch {
		case v.IsInherit():
			if v = parent.PropertyValue(d.Key); v.IsEmpty() {
				v = initialValue(d.Key)
			}
		case v.IsInitial():
			v = initialValue(d.Key)
		}
		if d.Key == "font-size" {
			v = fontSize(v, parentFontSize)
		}
		cs.SetProperty(d.Key, v, "")
	}
	return cs
}

// fontSize resolves relative font sizes to pixels.
func fontSize(v style.Property, parentPx float64) style.Property {
	s := strings.ToLower(strings.TrimSpace(v.String()))
	x, ok := css.Number(v)
	if !ok {
		return v
	}
	switch {
	case strings.HasSuffix(s, "rem"):
		x *= 16
	case strings.HasSuffix(s, "em"):
		x *= parentPx
	case strings.HasSuffix(s, "%"):
		x *= parentPx / 100
	default:
		return v
	}
	return css.Px(math.Round(x*1000) / 1000)
}
