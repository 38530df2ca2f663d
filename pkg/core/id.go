package core

import "sync/atomic"

// WidgetID uniquely identifies one widget (more precisely, one Pod) for
// the life of the process. The zero value means "no widget"; real ids
// start at 1 and are never reused.
type WidgetID uint64

// WindowID uniquely identifies one window for the life of the process.
// The zero value means "no window".
type WindowID uint64

var (
	widgetCounter atomic.Uint64
	windowCounter atomic.Uint64
)

// NextWidgetID allocates a new, unique widget id.
func NextWidgetID() WidgetID {
	return WidgetID(widgetCounter.Add(1))
}

// NextWindowID allocates a new, unique window id.
func NextWindowID() WindowID {
	return WindowID(windowCounter.Add(1))
}

// Identified is implemented by widgets that carry a pre-assigned id,
// typically so other widgets can address commands to them. Ids obtained
// from NextWidgetID remain unique; a widget must never invent one.
type Identified interface {
	WidgetID() WidgetID
}
