package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/domclone/dom/style"
)

// Pixels extracts a length in CSS pixels from a property value of the
// form "12px" or "12.5px". Other units and keywords result in ok=false.
// A bare "0" is accepted as zero pixels.
func Pixels(p style.Property) (px float64, ok bool) {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	if s == "0" {
		return 0, true
	}
	if !strings.HasSuffix(s, "px") {
		return 0, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-2]), 64)
	if err != nil {
		tracer().Debugf("css: not a pixel length: %q", s)
		return 0, false
	}
	return x, true
}

// Number extracts the leading numeric value of a property value, ignoring
// any unit. This mirrors the behaviour of JavaScript's parseFloat, which
// browsers-side code often applies to computed styles.
func Number(p style.Property) (float64, bool) {
	s := strings.TrimSpace(string(p))
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			end++
			continue
		}
		break
	}
	for end > 0 {
		if x, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return x, true
		}
		end--
	}
	return 0, false
}

// Px formats a length in CSS pixels as a property value, using the shortest
// decimal representation, e.g. Px(-25) = "-25px", Px(15.9) = "15.9px".
func Px(x float64) style.Property {
	return style.Property(strconv.FormatFloat(x, 'f', -1, 64) + "px")
}
