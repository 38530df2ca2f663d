package core

import (
	"time"

	"github.com/go-keel/keel/pkg/errors"
	"github.com/go-keel/keel/pkg/graphics"
	"github.com/go-keel/keel/pkg/shell"
)

// ContextState is the per-pass state shared by every context handed out
// while one pass walks the tree. The window controller owns it.
type ContextState struct {
	// Queue receives commands submitted during the pass.
	Queue *CommandQueue
	// Handle is the platform window the pass runs in.
	Handle shell.Handle
	// Window is the id of that window.
	Window WindowID
	// WindowSize is the window's current logical size.
	WindowSize graphics.Size
	// Focus is the widget holding keyboard focus when the pass started.
	Focus WidgetID
}

// baseCtx carries what every pass context has: the shared pass state and
// the dispatch state of the widget currently being visited.
type baseCtx struct {
	state  *ContextState
	widget *widgetState
}

// WidgetID returns the id of the widget this context was handed to.
func (c *baseCtx) WidgetID() WidgetID {
	return c.widget.id
}

// WindowID returns the id of the window the pass runs in.
func (c *baseCtx) WindowID() WindowID {
	return c.state.Window
}

// WindowSize returns the window's current logical size.
func (c *baseCtx) WindowSize() graphics.Size {
	return c.state.WindowSize
}

// Size returns the widget's layout size. Before the first layout pass it
// is zero.
func (c *baseCtx) Size() graphics.Size {
	return c.widget.size
}

// IsHot reports whether the pointer is inside the widget's layout rect
// (and inside all its ancestors' rects).
func (c *baseCtx) IsHot() bool {
	return c.widget.isHot
}

// IsActive reports whether the widget has captured the pointer.
func (c *baseCtx) IsActive() bool {
	return c.widget.isActive
}

// IsFocused reports whether this widget itself holds keyboard focus.
func (c *baseCtx) IsFocused() bool {
	return c.state.Focus == c.widget.id
}

// HasFocus reports whether this widget or one of its descendants holds
// keyboard focus.
func (c *baseCtx) HasFocus() bool {
	return c.widget.hasFocus
}

// RequestPaint marks the widget's whole layout rect as needing repaint.
func (c *baseCtx) RequestPaint() {
	c.widget.invalid.Add(c.widget.size.ToRect())
}

// RequestPaintRect marks part of the widget (in its own coordinates) as
// needing repaint.
func (c *baseCtx) RequestPaintRect(rect graphics.Rect) {
	c.widget.invalid.Add(rect)
}

// RequestLayout marks the widget (and therefore the path above it) as
// needing layout before the next paint.
func (c *baseCtx) RequestLayout() {
	c.widget.needsLayout = true
}

// RequestAnimFrame asks for an AnimFrameEvent before the next frame.
func (c *baseCtx) RequestAnimFrame() {
	c.widget.requestAnim = true
}

// ChildrenChanged tells the engine the widget added or removed children.
// The widget's descendant filter is cleared and rebuilt after the pass,
// along with the window's focus chain.
func (c *baseCtx) ChildrenChanged() {
	c.widget.children.Clear()
	c.widget.childrenChanged = true
	c.widget.updateFocusChain = true
	c.widget.needsLayout = true
}

// EventCtx is the context passed to Widget.Event. It is the only context
// through which a widget may claim the pointer, move focus, or submit
// commands and notifications.
type EventCtx struct {
	baseCtx
	notifications *[]Notification
	handled       bool
	root          bool
}

// SetActive captures the pointer for this widget (or releases it).
// While any widget is active, pointer events are routed into its subtree
// even when the pointer is outside the widget's rect.
func (c *EventCtx) SetActive(active bool) {
	c.widget.isActive = active
}

// SetHandled marks the event as handled. Non-pointer events stop
// propagating to untouched subtrees; pointer events keep flowing so hot
// state stays correct.
func (c *EventCtx) SetHandled() {
	c.handled = true
}

// IsHandled reports whether some widget already handled this event.
func (c *EventCtx) IsHandled() bool {
	return c.handled
}

// RequestFocus asks for keyboard focus for this widget. The request is
// resolved against the focus chain after the pass; if the widget is not
// in the chain, the request is dropped.
func (c *EventCtx) RequestFocus() {
	c.widget.requestFocus = &FocusChange{Kind: FocusTo, Target: c.widget.id}
}

// SetFocus asks for keyboard focus for a specific widget, subject to the
// same focus-chain check as RequestFocus.
func (c *EventCtx) SetFocus(id WidgetID) {
	c.widget.requestFocus = &FocusChange{Kind: FocusTo, Target: id}
}

// FocusNext moves focus to the next widget in the focus chain, wrapping
// at the end. Only the focused widget may call it.
func (c *EventCtx) FocusNext() {
	if !c.IsFocused() {
		errors.Misuse("core.EventCtx.FocusNext", "widget %d is not focused", c.widget.id)
		return
	}
	c.widget.requestFocus = &FocusChange{Kind: FocusNext}
}

// FocusPrev moves focus to the previous widget in the focus chain,
// wrapping at the start. Only the focused widget may call it.
func (c *EventCtx) FocusPrev() {
	if !c.IsFocused() {
		errors.Misuse("core.EventCtx.FocusPrev", "widget %d is not focused", c.widget.id)
		return
	}
	c.widget.requestFocus = &FocusChange{Kind: FocusPrev}
}

// ResignFocus gives up keyboard focus. Only the focused widget (or an
// ancestor of it) may call it.
func (c *EventCtx) ResignFocus() {
	if !c.HasFocus() {
		errors.Misuse("core.EventCtx.ResignFocus", "widget %d does not have focus", c.widget.id)
		return
	}
	c.widget.requestFocus = &FocusChange{Kind: FocusResign}
}

// RequestUpdate forces the widget's Update method to run after this pass
// even if the data compares equal.
func (c *EventCtx) RequestUpdate() {
	c.widget.requestUpdate = true
}

// RequestTimer schedules a timer; the resulting TimerEvent is delivered
// to this widget only.
func (c *EventCtx) RequestTimer(deadline time.Duration) shell.TimerToken {
	token := c.state.Handle.RequestTimer(deadline)
	c.widget.timers = append(c.widget.timers, TimerBinding{Token: token, Widget: c.widget.id})
	return token
}

// SubmitCommand queues a command for delivery after the current pass.
// An auto target resolves to this window.
func (c *EventCtx) SubmitCommand(cmd Command) {
	if cmd.target.Kind == TargetAuto {
		cmd.target = ToWindow(c.state.Window)
	}
	c.state.Queue.Push(cmd)
}

// SubmitNotification sends a notification to this widget's ancestors.
// It is delivered, innermost ancestor first, before the event pass ends.
func (c *EventCtx) SubmitNotification(selector Selector, payload any) {
	if c.root {
		errors.Misuse("core.EventCtx.SubmitNotification", "notification %q submitted at the root", selector)
		return
	}
	n := Notification{selector: selector, payload: payload, source: c.widget.id, route: c.widget.id}
	*c.notifications = append(*c.notifications, n)
}

// SetCursor asks for the given pointer icon while the widget is hot or
// active. An ancestor's SetCursor only applies if no descendant set one.
func (c *EventCtx) SetCursor(cursor shell.Cursor) {
	if !c.IsHot() && !c.IsActive() {
		return
	}
	if c.widget.cursorChange == cursorUnchanged {
		c.widget.cursorChange = cursorSet
		c.widget.cursor = cursor
	}
}

// OverrideCursor asks for the given pointer icon, overriding any cursor
// set by a descendant.
func (c *EventCtx) OverrideCursor(cursor shell.Cursor) {
	if !c.IsHot() && !c.IsActive() {
		return
	}
	c.widget.cursorChange = cursorOverride
	c.widget.cursor = cursor
}

// ClearCursor withdraws this widget's cursor request.
func (c *EventCtx) ClearCursor() {
	c.widget.cursorChange = cursorUnchanged
}

// LifecycleCtx is the context passed to Widget.Lifecycle.
type LifecycleCtx struct {
	baseCtx
}

// RegisterForFocus adds the widget to the window's focus chain. It may
// only be called while handling BuildFocusChainEvent.
func (c *LifecycleCtx) RegisterForFocus() {
	c.widget.focusChain = append(c.widget.focusChain, c.widget.id)
}

// UpdateCtx is the context passed to Widget.Update.
type UpdateCtx struct {
	baseCtx
	envChanged bool
}

// EnvChanged reports whether the environment differs from the one the
// widget saw on its previous visit.
func (c *UpdateCtx) EnvChanged() bool {
	return c.envChanged
}

// LayoutCtx is the context passed to Widget.Layout.
type LayoutCtx struct {
	baseCtx
}

// PaintCtx is the context passed to Widget.Paint. The canvas is already
// translated so the widget's top-left corner is the origin, and clipped
// to the widget's layout size.
type PaintCtx struct {
	baseCtx
	// Canvas receives the widget's drawing commands.
	Canvas graphics.Canvas
	region graphics.Region
	depth  int
}

// Region returns the invalid region, in the widget's own coordinates.
// Widgets may skip drawing outside it.
func (c *PaintCtx) Region() graphics.Region {
	return c.region
}

// Depth returns how many pods deep this paint call is.
func (c *PaintCtx) Depth() int {
	return c.depth
}

// WithSave runs f with the canvas state saved, restoring it afterwards.
// Use it around local transforms or clips.
func (c *PaintCtx) WithSave(f func(*PaintCtx)) {
	c.Canvas.Save()
	f(c)
	c.Canvas.Restore()
}
