package tui

import "testing"

// Global glyph state: not parallel.

func TestNewStarPicker_FloorsAndSnaps(t *testing.T) {
	if got := newStarPicker(0).value; got != 0.5 {
		t.Fatalf("expected an unrated movie to enter editing at the floor; got %v", got)
	}
	if got := newStarPicker(3.2).value; got != 3.0 {
		t.Fatalf("expected snapping to the half-step scale; got %v", got)
	}
	if got := newStarPicker(9).value; got != 5.0 {
		t.Fatalf("expected clamping to the maximum; got %v", got)
	}
}

func TestStarPicker_StepsStopAtBounds(t *testing.T) {
	p := newStarPicker(0.5)
	p.decr()
	if p.value != 0.5 {
		t.Fatalf("expected decr to stop at the floor; got %v", p.value)
	}
	p.incr()
	if p.value != 1.0 {
		t.Fatalf("expected incr to step by a half star; got %v", p.value)
	}

	p = newStarPicker(5.0)
	p.incr()
	if p.value != 5.0 {
		t.Fatalf("expected incr to stop at five stars; got %v", p.value)
	}
	p.decr()
	if p.value != 4.5 {
		t.Fatalf("expected decr to step by a half star; got %v", p.value)
	}
}

func TestStarGlyphs_Unicode(t *testing.T) {
	setGlyphs(glyphSetUnicode)
	defer setGlyphs(glyphSetUnicode)

	cases := []struct {
		v    float64
		want string
	}{
		{0.5, "½☆☆☆☆"},
		{3.0, "★★★☆☆"},
		{3.5, "★★★½☆"},
		{5.0, "★★★★★"},
	}
	for _, tc := range cases {
		if got := starGlyphs(tc.v); got != tc.want {
			t.Errorf("starGlyphs(%v) = %q; want %q", tc.v, got, tc.want)
		}
	}
}

func TestStarGlyphs_ASCII(t *testing.T) {
	setGlyphs(glyphSetASCII)
	defer setGlyphs(glyphSetUnicode)

	if got := starGlyphs(2.5); got != "**+.." {
		t.Fatalf("starGlyphs(2.5) = %q; want %q", got, "**+..")
	}
}
