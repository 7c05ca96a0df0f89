/*
Package pseudo clones the generated content of ::before and ::after
pseudo-elements.

Pseudo-elements are not part of a visual tree and are therefore lost when
nodes are cloned. A pseudo.Cloner recovers them: for every pseudo-element
with content, the clone is tagged with a unique class name and a <style>
child is appended, which re-creates the pseudo-element from its computed
style.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pseudo

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domclone.clone'.
func tracer() tracing.Trace {
	return tracing.Select("domclone.clone")
}
