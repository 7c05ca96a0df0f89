/*
Package htmltree builds in-memory visual trees from HTML parse trees.

Status

Styles are computed with a simplified cascade, which is sufficient for
static documents and for tests, but by no means a browser engine:

  - user agent defaults, author stylesheets and inline styles are applied
    in this order, with "!important" declarations of authors and inline
    styles taking precedence,
  - rules are ordered by selector specificity and source order,
  - inherited properties cascade from parent to child, and the keywords
    "inherit" and "initial" are honoured,
  - relative font sizes (em, rem, %) are resolved to pixels.

There is no layout: lengths other than font sizes stay as specified, and
scroll offsets are zero. Clients may set them on the resulting visual nodes.

Declarative shadow roots (<template shadowrootmode="open">) are attached to
their host element, scoped to the stylesheets within the template. Children
of the host are projected into slots by their slot attribute.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmltree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domclone.html'.
func tracer() tracing.Trace {
	return tracing.Select("domclone.html")
}
