package graphics

import "testing"

func TestRectContainsEdges(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)

	cases := []struct {
		name string
		p    Offset
		want bool
	}{
		{"inside", Offset{X: 15, Y: 25}, true},
		{"top-left corner", Offset{X: 10, Y: 20}, true},
		{"right edge", Offset{X: 40, Y: 30}, false},
		{"bottom edge", Offset{X: 20, Y: 60}, false},
		{"outside", Offset{X: 0, Y: 0}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tc.name, tc.p, got, tc.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)

	got := a.Intersect(b)
	want := Rect{Left: 5, Top: 5, Right: 10, Bottom: 10}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	c := RectFromLTWH(20, 20, 5, 5)
	if !a.Intersect(c).IsEmpty() {
		t.Errorf("disjoint rects should intersect to empty, got %+v", a.Intersect(c))
	}
	if a.Intersects(c) {
		t.Error("disjoint rects reported as intersecting")
	}
}

func TestRectUnion(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(20, 5, 10, 10)

	got := a.Union(b)
	want := Rect{Left: 0, Top: 0, Right: 30, Bottom: 15}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}

	// union with an empty rect is the other rect, not a stretch to origin
	if got := b.Union(Rect{}); got != b {
		t.Errorf("Union with empty = %+v, want %+v", got, b)
	}
}

func TestRectTranslateAndInset(t *testing.T) {
	r := RectFromLTWH(10, 10, 20, 20)

	moved := r.Translate(Offset{X: 5, Y: -5})
	if want := RectFromLTWH(15, 5, 20, 20); moved != want {
		t.Errorf("Translate = %+v, want %+v", moved, want)
	}

	shrunk := r.Inset(InsetsAll(2))
	if want := RectFromLTWH(12, 12, 16, 16); shrunk != want {
		t.Errorf("Inset = %+v, want %+v", shrunk, want)
	}
}

func TestConstraintsConstrain(t *testing.T) {
	bc := Constraints{
		Min: Size{Width: 10, Height: 10},
		Max: Size{Width: 100, Height: 50},
	}

	cases := []struct {
		in, want Size
	}{
		{Size{Width: 50, Height: 30}, Size{Width: 50, Height: 30}},
		{Size{Width: 5, Height: 5}, Size{Width: 10, Height: 10}},
		{Size{Width: 500, Height: 500}, Size{Width: 100, Height: 50}},
	}
	for _, tc := range cases {
		if got := bc.Constrain(tc.in); got != tc.want {
			t.Errorf("Constrain(%+v) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestConstraintsTightAndLoosen(t *testing.T) {
	size := Size{Width: 40, Height: 20}
	tight := Tight(size)
	if !tight.IsTight() {
		t.Error("Tight constraints not reported tight")
	}
	loose := tight.Loosen()
	if loose.IsTight() {
		t.Error("loosened constraints still tight")
	}
	if loose.Min != (Size{}) {
		t.Errorf("Loosen kept min %+v", loose.Min)
	}
}

func TestConstraintsShrink(t *testing.T) {
	bc := Constraints{
		Min: Size{Width: 20, Height: 20},
		Max: Size{Width: 100, Height: 50},
	}
	got := bc.Shrink(Size{Width: 10, Height: 60})
	if got.Max.Width != 90 || got.Max.Height != 0 {
		t.Errorf("Shrink max = %+v", got.Max)
	}
	if got.Min.Width != 10 || got.Min.Height != 0 {
		t.Errorf("Shrink min = %+v", got.Min)
	}
}

func TestUnboundedConstraints(t *testing.T) {
	bc := Constraints{Max: Unbounded}
	if bc.IsBoundedWidth() || bc.IsBoundedHeight() {
		t.Error("unbounded constraints reported bounded")
	}
	got := bc.Constrain(Size{Width: 1e9, Height: 1e9})
	if got != (Size{Width: 1e9, Height: 1e9}) {
		t.Errorf("unbounded Constrain clipped to %+v", got)
	}
}
