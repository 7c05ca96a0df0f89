/*
Package filter creates inclusion predicates for snapshots from CSS selectors.

Selectors are matched with cascadia. Visual nodes created from an HTML parse
tree (see package htmltree) are matched against their HTML node, giving full
selector support. For other visual nodes, a stand-in HTML node is created
from the node and its ancestors; sibling combinators and structural
pseudo-classes will not match correctly for these.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package filter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domclone.clone'.
func tracer() tracing.Trace {
	return tracing.Select("domclone.clone")
}
