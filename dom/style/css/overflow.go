package css

import (
	"strings"

	"github.com/npillmayer/domclone/dom/style"
)

// OverflowMode is an enum type for the CSS overflow-x and overflow-y properties.
type OverflowMode uint8

// Enum values for type OverflowMode.
const (
	OverflowUnset   OverflowMode = iota
	OverflowVisible              // CSS visible (default)
	OverflowHidden               // CSS hidden
	OverflowClip                 // CSS clip
	OverflowScroll               // CSS scroll
	OverflowAuto                 // CSS auto
	OverflowOverlay              // legacy WebKit overlay
)

// Overflow returns the overflow mode for a property value.
// Unknown values result in OverflowUnset.
func Overflow(p style.Property) OverflowMode {
	switch strings.ToLower(strings.TrimSpace(string(p))) {
	case "visible":
		return OverflowVisible
	case "hidden":
		return OverflowHidden
	case "clip":
		return OverflowClip
	case "scroll":
		return OverflowScroll
	case "auto":
		return OverflowAuto
	case "overlay":
		return OverflowOverlay
	}
	return OverflowUnset
}

// Scrolls is true for overflow modes that establish a scrollable viewport
// for the user, i.e. `auto` and `scroll`.
func (o OverflowMode) Scrolls() bool {
	return o == OverflowAuto || o == OverflowScroll
}

func (o OverflowMode) String() string {
	switch o {
	case OverflowVisible:
		return "visible"
	case OverflowHidden:
		return "hidden"
	case OverflowClip:
		return "clip"
	case OverflowScroll:
		return "scroll"
	case OverflowAuto:
		return "auto"
	case OverflowOverlay:
		return "overlay"
	}
	return "<unset>"
}

// Property returns the CSS property value for an overflow mode, or NullStyle
// for OverflowUnset.
func (o OverflowMode) Property() style.Property {
	if o == OverflowUnset {
		return style.NullStyle
	}
	return style.Property(o.String())
}
