package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

// Important is the priority flag of a declaration marked with "!important".
const Important = "important"

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// Declaration is a single style declaration: a property key, its value and
// its priority, which is either "" or Important.
type Declaration struct {
	Key      string
	Value    Property
	Priority string
}

// IsImportant returns true if a declaration carries the "!important" flag.
func (d Declaration) IsImportant() bool {
	return d.Priority == Important
}

func (d Declaration) String() string {
	if d.IsImportant() {
		return d.Key + ": " + d.Value.String() + " !important;"
	}
	return d.Key + ": " + d.Value.String() + ";"
}

// ComputedStyle is a read-only view onto the resolved style of a node.
// It mirrors the CSSStyleDeclaration returned by a browser's getComputedStyle.
//
// CSSText may legitimately be empty even for a non-empty style: some
// environments do not offer a serialized form of computed styles, and
// clients then have to iterate over the properties.
type ComputedStyle interface {
	CSSText() string                    // serialized form, may be empty
	Len() int                           // number of properties
	Item(i int) string                  // key of the i-th property
	PropertyValue(key string) Property  // value for key or NullStyle
	PropertyPriority(key string) string // "" or Important
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") || strings.HasPrefix(key, "font") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "flow-into", "flow-from":
		return true
	case "letter-spacing", "line-height", "quotes", "visibility", "white-space":
		return true
	case "word-spacing", "word-break", "word-wrap", "overflow-wrap":
		return true
	case "text-align", "text-indent", "text-transform", "hyphens", "tab-size":
		return true
	}
	return false
}
