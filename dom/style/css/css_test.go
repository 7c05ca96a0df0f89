package css_test

import (
	"testing"

	"github.com/npillmayer/domclone/dom/style"
	"github.com/npillmayer/domclone/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPositionBasic(t *testing.T) {
	if !css.Position("STICKY").IsSticky() {
		t.Errorf("expected position sticky to be recognized")
	}
	if !css.Position("unknown").IsUnset() {
		t.Errorf("expected unknown position to be unset")
	}
}

func TestPositionPattern(t *testing.T) {
	pos := css.Position(style.Property("fixed"))
	m := css.PositionPattern[string](pos)
	x := m.OneOf(css.PositionPatterns[string]{
		Unset:   "NONE",
		Fixed:   "FIXED",
		Default: "NONE",
	})
	if x != "FIXED" {
		t.Errorf("expected FIXED, have %v", x)
	}
	x = css.PositionPattern[string](css.Static()).OneOf(css.PositionPatterns[string]{
		Static:  "STATIC",
		Default: "NONE",
	})
	if x != "STATIC" {
		t.Errorf("expected STATIC, have %v", x)
	}
	if css.Relative().Property() != "relative" {
		t.Errorf("expected relative to serialize as 'relative', is %q", css.Relative().Property())
	}
}

func TestOverflow(t *testing.T) {
	for _, v := range []style.Property{"auto", "scroll", " Scroll "} {
		if !css.Overflow(v).Scrolls() {
			t.Errorf("expected overflow %q to scroll", v)
		}
	}
	for _, v := range []style.Property{"hidden", "visible", "clip", "overlay", ""} {
		if css.Overflow(v).Scrolls() {
			t.Errorf("expected overflow %q not to scroll", v)
		}
	}
}

func TestPixels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domclone.dom")
	defer teardown()
	//
	cases := []struct {
		in string
		px float64
		ok bool
	}{
		{"16px", 16, true},
		{"12.75px", 12.75, true},
		{"0", 0, true},
		{"1em", 0, false},
		{"auto", 0, false},
		{"xpx", 0, false},
	}
	for _, c := range cases {
		px, ok := css.Pixels(style.Property(c.in))
		if ok != c.ok || px != c.px {
			t.Errorf("Pixels(%q): expected (%v, %v), have (%v, %v)", c.in, c.px, c.ok, px, ok)
		}
	}
}

func TestNumberAndPx(t *testing.T) {
	if x, ok := css.Number("900px"); !ok || x != 900 {
		t.Errorf("expected Number(900px) = 900, is %v", x)
	}
	if _, ok := css.Number("auto"); ok {
		t.Errorf("expected Number(auto) to fail")
	}
	if css.Px(-25) != "-25px" {
		t.Errorf("expected -25px, have %s", css.Px(-25))
	}
	if css.Px(15.9) != "15.9px" {
		t.Errorf("expected 15.9px, have %s", css.Px(15.9))
	}
}
