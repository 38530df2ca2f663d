package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in logical pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Size represents width and height dimensions in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether the size has no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// IsFinite reports whether both dimensions are finite.
func (s Size) IsFinite() bool {
	return !math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0)
}

// ToRect returns the rectangle with origin zero and this size.
func (s Size) ToRect() Rect {
	return Rect{Right: s.Width, Bottom: s.Height}
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromOriginSize constructs a Rect from an origin point and a size.
func RectFromOriginSize(origin Offset, size Size) Rect {
	return RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Area returns the area of the rectangle, or 0 if it is empty.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Width() * r.Height()
}

// Contains reports whether the point lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom exclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Translate returns the rectangle moved by the given offset.
func (r Rect) Translate(o Offset) Rect {
	return Rect{
		Left:   r.Left + o.X,
		Top:    r.Top + o.Y,
		Right:  r.Right + o.X,
		Bottom: r.Bottom + o.Y,
	}
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Inset returns the rectangle shrunk by the given insets.
func (r Rect) Inset(insets Insets) Rect {
	return Rect{
		Left:   r.Left + insets.Left,
		Top:    r.Top + insets.Top,
		Right:  r.Right - insets.Right,
		Bottom: r.Bottom - insets.Bottom,
	}
}

// Insets represents spacing on each side of a rectangle.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// InsetsAll returns uniform insets on all four sides.
func InsetsAll(value float64) Insets {
	return Insets{Left: value, Top: value, Right: value, Bottom: value}
}

// Horizontal returns the combined left and right insets.
func (i Insets) Horizontal() float64 {
	return i.Left + i.Right
}

// Vertical returns the combined top and bottom insets.
func (i Insets) Vertical() float64 {
	return i.Top + i.Bottom
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// SizeEqual reports whether two sizes are approximately equal.
func SizeEqual(a, b Size) bool {
	return floatEqual(a.Width, b.Width) && floatEqual(a.Height, b.Height)
}
