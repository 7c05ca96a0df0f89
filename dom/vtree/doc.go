/*
Package vtree is a straightforward in-memory implementation of a visual tree.

Overview

Every node of a vtree carries everything a live rendering engine would be
asked for when taking a snapshot: attributes, a computed style snapshot,
scroll offsets, an optional shadow root, slot assignments, the current
value of form controls and the drawn content of canvases. Type Window
implements dom.Environment on top of such a tree.

Trees are either built programmatically, by package htmltree from an HTML
document and its stylesheets, or by package rodtree from a live browser page.

    host := vtree.NewElement("div")
    host.AppendChild(vtree.NewText("Hello"))
    host.SetScroll(40, 0)

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domclone.dom'.
func tracer() tracing.Trace {
	return tracing.Select("domclone.dom")
}
