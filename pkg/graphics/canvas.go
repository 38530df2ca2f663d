package graphics

// Canvas records or renders drawing commands.
//
// The dispatch core only issues calls against this interface during the
// paint pass; rendering backends (and the recording canvas used by tests)
// implement it.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawText draws a measured text layout with its top-left corner at
	// the given position.
	DrawText(layout *TextLayout, position Offset)

	// Size returns the size of the canvas in logical pixels.
	Size() Size
}
