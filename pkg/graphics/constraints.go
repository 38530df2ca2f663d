package graphics

import "math"

// Constraints describes the minimum and maximum size available to a
// widget during layout. A widget's layout method must return a size
// within these bounds.
//
// The maximum on either axis may be infinite, meaning the widget may
// pick any size it likes on that axis.
type Constraints struct {
	Min Size
	Max Size
}

// Unbounded is the infinite extent usable as a constraint maximum.
var Unbounded = Size{Width: math.Inf(1), Height: math.Inf(1)}

// Tight returns constraints that admit exactly one size.
func Tight(size Size) Constraints {
	return Constraints{Min: size, Max: size}
}

// Loose returns constraints with a zero minimum and the given maximum.
func Loose(size Size) Constraints {
	return Constraints{Max: size}
}

// Constrain clamps the given size to these constraints.
func (c Constraints) Constrain(size Size) Size {
	return Size{
		Width:  clamp(size.Width, c.Min.Width, c.Max.Width),
		Height: clamp(size.Height, c.Min.Height, c.Max.Height),
	}
}

// Loosen returns a copy of these constraints with a zero minimum.
func (c Constraints) Loosen() Constraints {
	return Constraints{Max: c.Max}
}

// Shrink reduces the maximum (and clamps the minimum) by the given size,
// never going below zero. Used by widgets that reserve space, such as
// padding, before laying out a child.
func (c Constraints) Shrink(size Size) Constraints {
	shrunk := Size{
		Width:  math.Max(0, c.Max.Width-size.Width),
		Height: math.Max(0, c.Max.Height-size.Height),
	}
	minShrunk := Size{
		Width:  math.Min(math.Max(0, c.Min.Width-size.Width), shrunk.Width),
		Height: math.Min(math.Max(0, c.Min.Height-size.Height), shrunk.Height),
	}
	return Constraints{Min: minShrunk, Max: shrunk}
}

// IsTight reports whether the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.Min == c.Max
}

// IsBoundedWidth reports whether the maximum width is finite.
func (c Constraints) IsBoundedWidth() bool {
	return !math.IsInf(c.Max.Width, 1)
}

// IsBoundedHeight reports whether the maximum height is finite.
func (c Constraints) IsBoundedHeight() bool {
	return !math.IsInf(c.Max.Height, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
