/*
Package resource converts external resources into self-contained data URLs.

Snapshots of visual trees must not reference external resources, as the
snapshot is usually rasterized in a context without network access (e.g.,
as an SVG foreign object). Package resource offers MIME type inference from
URLs and from content, and a Converter which fetches resources through a
client-supplied Fetcher, embeds them as base64 data URLs and caches the
results.

Package resource does not do any networking on its own.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resource

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domclone.resource'.
func tracer() tracing.Trace {
	return tracing.Select("domclone.resource")
}
