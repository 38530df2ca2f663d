// Package uitest provides a headless harness for driving the dispatch
// engine in tests: a fake clock, a recording shell and canvas, and input
// synthesis helpers.
package uitest

import (
	"time"

	"github.com/go-keel/keel/pkg/core"
	"github.com/go-keel/keel/pkg/data"
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/shell"
	"github.com/go-keel/keel/pkg/widgets"
	"github.com/go-keel/keel/pkg/window"
)

// Harness mounts a widget tree in a headless window and synthesizes
// platform input against it.
type Harness[T data.Data[T]] struct {
	App    *window.App[T]
	Win    *window.Window[T]
	Shell  *HeadlessShell
	Clock  *FakeClock
	seq    uint64
	lastXY graphics.Offset
}

// NewHarness mounts root with the default theme in a 400x300 window, and
// delivers the connected and initial size events.
func NewHarness[T data.Data[T]](root core.Widget[T], d T) *Harness[T] {
	return NewHarnessWithEnv(root, d, widgets.DefaultEnv())
}

// NewHarnessWithEnv mounts root with a custom environment.
func NewHarnessWithEnv[T data.Data[T]](root core.Widget[T], d T, e env.Env) *Harness[T] {
	clock := NewFakeClock()
	sh := NewHeadlessShell(clock)
	app := window.NewApp(d, e)
	win := app.AddWindow(sh, root)

	h := &Harness[T]{App: app, Win: win, Shell: sh, Clock: clock}
	h.dispatch(shell.InputEvent{Kind: shell.KindWindowConnected, Width: 400, Height: 300})
	h.dispatch(shell.InputEvent{Kind: shell.KindWindowSize, Width: 400, Height: 300})
	return h
}

// Data returns the current application data.
func (h *Harness[T]) Data() T {
	return h.App.Data()
}

// Focus returns the focused widget id, or zero.
func (h *Harness[T]) Focus() core.WidgetID {
	return h.Win.Focus()
}

func (h *Harness[T]) dispatch(ev shell.InputEvent) bool {
	h.seq++
	ev.Seq = h.seq
	return h.App.DispatchInput(h.Win.ID(), ev)
}

// SetWindowSize delivers a window resize.
func (h *Harness[T]) SetWindowSize(width, height float64) {
	h.dispatch(shell.InputEvent{Kind: shell.KindWindowSize, Width: width, Height: height})
}

// MouseMoveTo moves the pointer to the given window position.
func (h *Harness[T]) MouseMoveTo(x, y float64) bool {
	h.lastXY = graphics.Offset{X: x, Y: y}
	return h.dispatch(shell.InputEvent{Kind: shell.KindMouseMove, X: x, Y: y})
}

// MouseDownAt presses the left button at the given position (moving the
// pointer there first).
func (h *Harness[T]) MouseDownAt(x, y float64) bool {
	h.MouseMoveTo(x, y)
	return h.dispatch(shell.InputEvent{
		Kind: shell.KindMouseDown, X: x, Y: y, Button: shell.MouseButtonLeft,
	})
}

// MouseUpAt releases the left button at the given position.
func (h *Harness[T]) MouseUpAt(x, y float64) bool {
	return h.dispatch(shell.InputEvent{
		Kind: shell.KindMouseUp, X: x, Y: y, Button: shell.MouseButtonLeft,
	})
}

// Click presses and releases the left button at the given position.
func (h *Harness[T]) Click(x, y float64) bool {
	h.MouseDownAt(x, y)
	return h.MouseUpAt(x, y)
}

// MouseLeave moves the pointer out of the window.
func (h *Harness[T]) MouseLeave() {
	h.dispatch(shell.InputEvent{Kind: shell.KindMouseLeave})
}

// RequestClose delivers the platform's window-close request.
func (h *Harness[T]) RequestClose() bool {
	return h.dispatch(shell.InputEvent{Kind: shell.KindWindowCloseRequested})
}

// Wheel scrolls at the current pointer position.
func (h *Harness[T]) Wheel(dx, dy float64) bool {
	return h.dispatch(shell.InputEvent{
		Kind: shell.KindWheel, X: h.lastXY.X, Y: h.lastXY.Y, WheelDX: dx, WheelDY: dy,
	})
}

// KeyDown delivers a key press to the focused widget.
func (h *Harness[T]) KeyDown(key string) bool {
	return h.dispatch(shell.InputEvent{Kind: shell.KindKeyDown, Key: key})
}

// KeyUp delivers a key release to the focused widget.
func (h *Harness[T]) KeyUp(key string) bool {
	return h.dispatch(shell.InputEvent{Kind: shell.KindKeyUp, Key: key})
}

// TypeText delivers committed text to the focused widget.
func (h *Harness[T]) TypeText(text string) bool {
	return h.dispatch(shell.InputEvent{Kind: shell.KindTextInput, Text: text})
}

// AdvanceTime moves the fake clock forward and delivers the timers that
// expired, in deadline order.
func (h *Harness[T]) AdvanceTime(d time.Duration) {
	for _, token := range h.Clock.Advance(d) {
		h.dispatch(shell.InputEvent{Kind: shell.KindTimer, Timer: token})
	}
}

// AnimFrame delivers one animation frame with the given elapsed time.
func (h *Harness[T]) AnimFrame(elapsed time.Duration) {
	h.dispatch(shell.InputEvent{Kind: shell.KindAnimFrame, ElapsedNanos: uint64(elapsed.Nanoseconds())})
}

// RenderFrame runs layout if needed and paints the window's invalid
// region onto a fresh recording canvas.
func (h *Harness[T]) RenderFrame() *RecordingCanvas {
	canvas := NewRecordingCanvas(h.Win.Size())
	h.App.Paint(h.Win.ID(), canvas)
	return canvas
}
