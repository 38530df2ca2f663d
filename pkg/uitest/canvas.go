package uitest

import "github.com/go-keel/keel/pkg/graphics"

// DisplayOp is one recorded canvas call.
type DisplayOp struct {
	Op   string
	Args map[string]any
}

// RecordingCanvas implements graphics.Canvas by recording calls instead
// of rasterizing, so tests can assert on what was painted.
type RecordingCanvas struct {
	size graphics.Size
	ops  []DisplayOp
}

// NewRecordingCanvas returns an empty canvas of the given size.
func NewRecordingCanvas(size graphics.Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

func (c *RecordingCanvas) record(op string, args map[string]any) {
	c.ops = append(c.ops, DisplayOp{Op: op, Args: args})
}

func (c *RecordingCanvas) Save() {
	c.record("save", nil)
}

func (c *RecordingCanvas) Restore() {
	c.record("restore", nil)
}

func (c *RecordingCanvas) Translate(dx, dy float64) {
	c.record("translate", map[string]any{"dx": dx, "dy": dy})
}

func (c *RecordingCanvas) ClipRect(rect graphics.Rect) {
	c.record("clipRect", map[string]any{"rect": rect})
}

func (c *RecordingCanvas) Clear(color graphics.Color) {
	c.record("clear", map[string]any{"color": color})
}

func (c *RecordingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.record("drawRect", map[string]any{"rect": rect, "paint": paint})
}

func (c *RecordingCanvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	c.record("drawLine", map[string]any{"start": start, "end": end, "paint": paint})
}

func (c *RecordingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.record("drawCircle", map[string]any{"center": center, "radius": radius, "paint": paint})
}

func (c *RecordingCanvas) DrawText(layout *graphics.TextLayout, position graphics.Offset) {
	c.record("drawText", map[string]any{"text": layout.Text, "position": position})
}

func (c *RecordingCanvas) Size() graphics.Size {
	return c.size
}

// Ops returns the recorded calls in order.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return c.ops
}

// OpNames returns just the call names, in order.
func (c *RecordingCanvas) OpNames() []string {
	names := make([]string, len(c.ops))
	for i, op := range c.ops {
		names[i] = op.Op
	}
	return names
}

// Count returns how many times the named call was recorded.
func (c *RecordingCanvas) Count(op string) int {
	n := 0
	for _, rec := range c.ops {
		if rec.Op == op {
			n++
		}
	}
	return n
}

// TextDrawn reports whether the given text was drawn.
func (c *RecordingCanvas) TextDrawn(text string) bool {
	for _, rec := range c.ops {
		if rec.Op == "drawText" && rec.Args["text"] == text {
			return true
		}
	}
	return false
}

// Reset discards the recorded calls.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
}
