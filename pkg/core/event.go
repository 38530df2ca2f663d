package core

import (
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/shell"
)

// Event is an input or platform occurrence delivered during the event
// pass. Widgets receive events through their Event method and must
// ignore kinds they don't recognize.
//
// Pointer positions are expressed in the coordinate space of the
// receiving widget's parent; the Pod translates them as it recurses, so a
// widget always sees positions relative to its own origin.
type Event interface {
	isEvent()
}

// MouseEvent carries the shared fields of all pointer events.
type MouseEvent struct {
	// Pos is the pointer position, relative to the receiving widget.
	Pos graphics.Offset
	// Button is the button concerned, for down/up events.
	Button shell.MouseButton
	// Wheel is the scroll delta, for wheel events.
	Wheel graphics.Offset
	// Seq is the platform sequence number of the originating raw event.
	Seq uint64
}

// MouseDownEvent is a pointer button press.
type MouseDownEvent struct{ MouseEvent }

// MouseUpEvent is a pointer button release.
type MouseUpEvent struct{ MouseEvent }

// MouseMoveEvent is a pointer move.
type MouseMoveEvent struct{ MouseEvent }

// WheelEvent is a scroll wheel movement.
type WheelEvent struct{ MouseEvent }

// KeyDownEvent is a key press, delivered along the focused path only.
type KeyDownEvent struct {
	Key string
	Seq uint64
}

// KeyUpEvent is a key release, delivered along the focused path only.
type KeyUpEvent struct {
	Key string
	Seq uint64
}

// TextInputEvent is committed text, delivered along the focused path only.
type TextInputEvent struct {
	Text string
	Seq  uint64
}

// WindowConnectedEvent is the first event a window's tree receives.
type WindowConnectedEvent struct{}

// WindowCloseRequestedEvent announces the user asked to close the window.
type WindowCloseRequestedEvent struct{}

// WindowSizeEvent announces a new window size. It marks the whole tree
// for relayout but recurses no further than the root.
type WindowSizeEvent struct {
	Size graphics.Size
}

// WindowFocusEvent announces the window gained or lost keyboard focus.
// It is broadcast to the whole tree; widget-level focus is unaffected.
type WindowFocusEvent struct {
	Focused bool
}

// AnimFrameEvent is delivered, before layout, to every widget that
// requested an animation frame.
type AnimFrameEvent struct {
	ElapsedNanos uint64
}

// TimerEvent is delivered only to the widget that requested the timer.
type TimerEvent struct {
	Token shell.TimerToken
}

// CommandEvent delivers a queued command to its target (or to everything,
// for broadcasts).
type CommandEvent struct {
	Command Command
}

// NotificationEvent delivers a child's notification to an ancestor. It is
// never recursed downward.
type NotificationEvent struct {
	Notification Notification
}

// RouteTimerEvent is a routing envelope created by the window controller;
// it walks the descendant filters and is unwrapped into a TimerEvent at
// its target. Containers on the path forward it blindly; only the target
// widget sees the unwrapped TimerEvent.
type RouteTimerEvent struct {
	Token  shell.TimerToken
	Target WidgetID
}

// RouteCommandEvent is a routing envelope for an addressed or broadcast
// command. Widgets see the unwrapped CommandEvent.
type RouteCommandEvent struct {
	Command Command
}

// PointerLeaveEvent announces the pointer left the window; any hot widget
// loses its hot state.
type PointerLeaveEvent struct{}

func (MouseDownEvent) isEvent()            {}
func (MouseUpEvent) isEvent()              {}
func (MouseMoveEvent) isEvent()            {}
func (WheelEvent) isEvent()                {}
func (KeyDownEvent) isEvent()              {}
func (KeyUpEvent) isEvent()                {}
func (TextInputEvent) isEvent()            {}
func (WindowConnectedEvent) isEvent()      {}
func (WindowCloseRequestedEvent) isEvent() {}
func (WindowSizeEvent) isEvent()           {}
func (WindowFocusEvent) isEvent()          {}
func (AnimFrameEvent) isEvent()            {}
func (TimerEvent) isEvent()                {}
func (CommandEvent) isEvent()              {}
func (NotificationEvent) isEvent()         {}
func (RouteTimerEvent) isEvent()           {}
func (RouteCommandEvent) isEvent()         {}
func (PointerLeaveEvent) isEvent()         {}

// IsPointerEvent reports whether the event carries a pointer position.
// Pointer events keep flowing to pods after a sibling marks the pass
// handled, because hot tracking must stay current.
func IsPointerEvent(ev Event) bool {
	switch ev.(type) {
	case MouseDownEvent, MouseUpEvent, MouseMoveEvent, WheelEvent, PointerLeaveEvent:
		return true
	}
	return false
}
