package uitest

import (
	"time"

	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/shell"
)

// HeadlessShell implements shell.Handle without a platform window,
// recording everything the engine asks of it.
type HeadlessShell struct {
	clock *FakeClock

	// FullInvalidates counts Invalidate calls.
	FullInvalidates int
	// InvalidRects holds every rect passed to InvalidateRect.
	InvalidRects []graphics.Rect
	// AnimFrameRequests counts RequestAnimFrame calls.
	AnimFrameRequests int
	// Cursor is the last cursor set, if CursorSet.
	Cursor    shell.Cursor
	CursorSet bool
	// CloseRequests counts Close calls.
	CloseRequests int
}

// NewHeadlessShell returns a shell backed by the given clock.
func NewHeadlessShell(clock *FakeClock) *HeadlessShell {
	return &HeadlessShell{clock: clock}
}

func (h *HeadlessShell) Invalidate() {
	h.FullInvalidates++
}

func (h *HeadlessShell) InvalidateRect(left, top, right, bottom float64) {
	h.InvalidRects = append(h.InvalidRects, graphics.Rect{
		Left: left, Top: top, Right: right, Bottom: bottom,
	})
}

func (h *HeadlessShell) RequestAnimFrame() {
	h.AnimFrameRequests++
}

func (h *HeadlessShell) RequestTimer(deadline time.Duration) shell.TimerToken {
	return h.clock.Schedule(deadline)
}

func (h *HeadlessShell) SetCursor(cursor shell.Cursor) {
	h.Cursor = cursor
	h.CursorSet = true
}

func (h *HeadlessShell) Close() {
	h.CloseRequests++
}

func (h *HeadlessShell) Now() time.Time {
	return h.clock.Now()
}
