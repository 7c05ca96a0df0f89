/*
Package domclone takes static snapshots of visual trees, as a first step of
rendering (parts of) a web page to an image.

A snapshot is a detached replica of a node and its descendants, carrying the
computed style of every element, the current state of form controls, and
canvases and video posters embedded as data URLs. The heavy lifting is done
by the sub-packages:

  - clone is the cloning pipeline proper,
  - pseudo materializes ::before and ::after pseudo-elements,
  - resource embeds external resources as data URLs,
  - filter builds node filters from CSS selectors,
  - dom/vtree, dom/htmltree and dom/rodtree provide visual trees to clone,
    built in memory, from HTML and CSS, or captured from a live browser.

This package wires them together with sensible defaults.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domclone

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domclone.clone'.
func tracer() tracing.Trace {
	return tracing.Select("domclone.clone")
}
