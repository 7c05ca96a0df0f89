/*
Package rodtree captures visual trees from live browser pages.

A capture script is evaluated in a page controlled by go-rod. It serializes
the nodes below a selector, together with their computed styles (including
::before and ::after), scroll offsets, form values, canvas content, shadow
roots and slot assignments. The result is decoded into an in-memory visual
tree (package vtree), which may then be cloned outside of the browser.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rodtree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'domclone.dom'.
func tracer() tracing.Trace {
	return tracing.Select("domclone.dom")
}
