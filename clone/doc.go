/*
Package clone produces detached, static replicas of visual nodes and their
descendants, suitable for later rasterization into an image.

Overview

Taking a snapshot of a visual (sub-)tree is not a matter of copying nodes:
the replica will be rendered outside of its original scroll and layout
context, without stylesheets, and without any live state of form controls,
canvases or videos. A Cloner therefore

  - copies the computed style of every element onto its clone, correcting
    it for scroll offsets of the node itself, of its parent, and of the
    document,
  - replaces canvases with drawn content and videos showing a poster by
    images with embedded data URLs,
  - follows shadow roots and slot projection when enumerating children, and
  - freezes the current values of inputs, textareas and selects into
    attributes and content.

The original tree is never modified.

    cloner := clone.New(env, clone.WithFilter(func(n dom.Node) bool {
        return n.NodeName() != "noscript"
    }))
    snapshot, err := cloner.Clone(ctx, node, true)

Cloning is strictly sequential: children are cloned one after the other, in
source order, each one completely (including its descendants) before the
next sibling is started. An error anywhere in the recursion aborts the
whole operation; there are no partial results.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package clone

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domclone.clone'.
func tracer() tracing.Trace {
	return tracing.Select("domclone.clone")
}
