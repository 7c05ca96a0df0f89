package css

import (
	"strings"

	"github.com/npillmayer/domclone/dom/style"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type Position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
	positionSticky            // CSS sticky
)

// PositionT is an option type for CSS positions.
type PositionT struct {
	kind position
}

/*
type PositionT
	= Undefined
	| Static
	| Relative
	| Absolute
	| Fixed
	| Sticky
*/

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`.
func Relative() PositionT {
	return PositionT{kind: positionRelative}
}

// Absolute creates a CSS position of value `absolute`.
func Absolute() PositionT {
	return PositionT{kind: positionAbsolute}
}

// Fixed creates a CSS position of value `fixed`.
func Fixed() PositionT {
	return PositionT{kind: positionFixed}
}

// Sticky creates a CSS position of value `sticky`.
func Sticky() PositionT {
	return PositionT{kind: positionSticky}
}

var positionMap = map[position]string{
	positionStatic:   "static",
	positionRelative: "relative",
	positionAbsolute: "absolute",
	positionFixed:    "fixed",
	positionSticky:   "sticky",
}

// Position returns an optional position type from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset position.
func Position(p style.Property) PositionT {
	switch strings.ToLower(strings.TrimSpace(string(p))) {
	case "static":
		return Static()
	case "relative":
		return Relative()
	case "absolute":
		return Absolute()
	case "fixed":
		return Fixed()
	case "sticky", "-webkit-sticky":
		return Sticky()
	}
	return PositionT{}
}

// Property returns the CSS property value for a position, or NullStyle for
// an unset position.
func (p PositionT) Property() style.Property {
	return style.Property(positionMap[p.kind])
}

func (p PositionT) String() string {
	if p.kind == positionUnset {
		return "<unset>"
	}
	return positionMap[p.kind]
}

// --- Expression matching ---------------------------------------------------

// PositionPatterns holds one result per kind of position.
type PositionPatterns[T any] struct {
	Unset    T
	Static   T
	Absolute T
	Relative T
	Fixed    T
	Sticky   T
	Default  T
}

// PositionPattern starts an expression match on a position:
//
//     pinned := css.PositionPattern[bool](pos).OneOf(css.PositionPatterns[bool]{
//         Fixed: true,
//     })
//
func PositionPattern[T any](p PositionT) *PMatchExpr[T] {
	return &PMatchExpr[T]{pos: p}
}

// PMatchExpr is part of pattern matching for PositionT types and intended to be instantiated
// using `PositionPattern()` only.
type PMatchExpr[T any] struct {
	pos PositionT
}

// OneOf selects the pattern for the kind of the position.
func (m *PMatchExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	switch m.pos.kind {
	case positionUnset:
		return patterns.Unset
	case positionStatic:
		return patterns.Static
	case positionAbsolute:
		return patterns.Absolute
	case positionRelative:
		return patterns.Relative
	case positionFixed:
		return patterns.Fixed
	case positionSticky:
		return patterns.Sticky
	}
	return patterns.Default
}

// ---------------------------------------------------------------------------

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsRelative returns true if p represents a relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsAbsolute returns true if p represents an absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if p represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}

// IsSticky returns true if p represents a sticky position.
func (p PositionT) IsSticky() bool {
	return p.kind == positionSticky
}
