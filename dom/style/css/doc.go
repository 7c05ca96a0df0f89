/*
Package css provides functionality for CSS style values.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting from the textual nature of CSS property values.
It interprets the handful of values the cloning machinery has to
inspect: positions, overflow modes and pixel lengths.

Status

The set of recognized values is deliberately small and will grow on demand.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domclone.dom'.
func tracer() tracing.Trace {
	return tracing.Select("domclone.dom")
}
