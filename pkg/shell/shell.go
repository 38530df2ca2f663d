// Package shell defines the boundary between the dispatch engine and the
// platform windowing layer.
//
// The engine never owns an event loop: a platform embedder (or the
// headless test shell) delivers raw input events to the app driver and
// implements Handle so the engine can schedule repaints, animation
// frames, and timers. Nothing in this package reaches back into the
// widget tree.
package shell

import "time"

// TimerToken identifies one scheduled timer. Tokens are unique for the
// life of the process and never reused.
type TimerToken uint64

// TimerTokenInvalid is the zero token, never returned by a handle.
const TimerTokenInvalid TimerToken = 0

// Cursor names a pointer icon the engine may request from the platform.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorIBeam
	CursorCrosshair
	CursorPointer
	CursorNotAllowed
	CursorResizeLeftRight
	CursorResizeUpDown
)

// Handle is the engine's view of one native window.
//
// All methods are called from the UI thread during or immediately after a
// pass; implementations must not call back into the engine synchronously.
type Handle interface {
	// Invalidate requests a full repaint of the window.
	Invalidate()

	// InvalidateRect requests a repaint of part of the window.
	InvalidateRect(left, top, right, bottom float64)

	// RequestAnimFrame asks the platform to schedule another frame soon.
	RequestAnimFrame()

	// RequestTimer schedules a timer and returns its token. The platform
	// delivers expiry as an InputEvent of KindTimer carrying the token.
	RequestTimer(deadline time.Duration) TimerToken

	// SetCursor sets the pointer icon while it is over this window.
	SetCursor(cursor Cursor)

	// Close asks the platform to close the window.
	Close()

	// Now returns the platform's monotonic time.
	Now() time.Time
}

// EventKind discriminates raw input events.
type EventKind int

const (
	KindMouseDown EventKind = iota
	KindMouseUp
	KindMouseMove
	KindWheel
	KindMouseLeave
	KindKeyDown
	KindKeyUp
	KindTextInput
	KindWindowConnected
	KindWindowCloseRequested
	KindWindowSize
	KindTimer
	KindAnimFrame
	KindWindowFocus
)

// MouseButton identifies which button a mouse event concerns.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// InputEvent is one raw platform event. Each event carries a sequence
// number, monotonic per window, so the engine can detect reordering bugs
// in embedders.
type InputEvent struct {
	Seq  uint64
	Kind EventKind

	// Pointer fields (mouse kinds).
	X, Y       float64
	Button     MouseButton
	WheelDX    float64
	WheelDY    float64

	// Key fields (key and text kinds).
	Key  string
	Text string

	// Window size (KindWindowSize).
	Width, Height float64

	// Timer token (KindTimer).
	Timer TimerToken

	// Elapsed nanoseconds since the last frame (KindAnimFrame).
	ElapsedNanos uint64

	// Whether the window gained or lost keyboard focus (KindWindowFocus).
	Focused bool
}
