package cssom

import "github.com/npillmayer/domclone/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of visual trees, we introduce an interface for CSS
// stylesheets. Clients will have to provide a concrete implementation of
// this interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the style rules of a stylesheet, in order
}

// Rule is the type stylesheets consists of. At-rules (@media, @font-face, …)
// are not represented.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}
