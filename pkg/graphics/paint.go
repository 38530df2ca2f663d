package graphics

// PaintStyle selects between filling and stroking a shape.
type PaintStyle int

const (
	// PaintStyleFill fills the shape's interior.
	PaintStyleFill PaintStyle = iota
	// PaintStyleStroke strokes the shape's outline.
	PaintStyleStroke
)

// Paint describes how a shape is drawn.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
}

// Fill returns a fill paint with the given color.
func Fill(color Color) Paint {
	return Paint{Color: color}
}

// Stroke returns a stroke paint with the given color and width.
func Stroke(color Color, width float64) Paint {
	return Paint{Color: color, Style: PaintStyleStroke, StrokeWidth: width}
}
