/*
Package dom defines the view onto a live visual tree which is needed to take
a static snapshot of it.

Status

Early draft—API may change frequently. Please stay patient.

Overview

A visual tree is a tree of W3C-type nodes as rendered by some environment:
a browser, a headless browser driven by CDP, or an in-memory tree with
pre-computed styles. Interface Node gives read-only access to the identity,
attributes, children (including shadow roots and slot projection) and
scroll state of a node.

Global rendering state, i.e. computed styles and the scroll position and
size of the viewport, is not accessed ambiently but through an Environment.
Code taking snapshots receives the environment as an explicit parameter,
which makes it possible to exercise style corrections without a live
rendering engine.

Concrete visual trees are provided by sub-packages:

   vtree      in-memory visual tree and environment
   htmltree   visual tree built from an HTML parse tree and stylesheets
   rodtree    visual tree captured from a live browser page

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom
